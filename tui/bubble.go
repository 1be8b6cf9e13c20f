package tui

import (
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// picker is a filterable list with an optional preview pane.
type picker struct {
	keymap *keymap
	listC  list.Model

	preview     bool
	hasPreviews bool

	chosen   *Option
	quitting bool

	width, height int
}

func newPicker(title string, options []Option, preview bool) *picker {
	keymap := newKeymap()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = lo.SomeBy(options, func(o Option) bool {
		return o.Description != ""
	})
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	listC := list.New(toItems(options), delegate, 0, 0)
	listC.KeyMap = keymap.forList()
	listC.AdditionalShortHelpKeys = func() []bubblesKey.Binding {
		return []bubblesKey.Binding{keymap.confirm, keymap.togglePreview}
	}
	listC.Title = title
	listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	listC.Styles.NoItems = paddingStyle
	listC.StatusMessageLifetime = time.Hour * 999
	listC.SetStatusBarItemName("option", "options")

	p := &picker{
		keymap:  keymap,
		listC:   listC,
		preview: preview,
		hasPreviews: lo.SomeBy(options, func(o Option) bool {
			return o.Preview != ""
		}),
	}

	if w, h, err := util.TerminalSize(); err == nil {
		p.resize(w, h)
	}

	return p
}

func (p *picker) showPreview() bool {
	return p.preview && p.hasPreviews && p.width >= minPreviewWidth
}

func (p *picker) listWidth() int {
	if p.showPreview() {
		return p.width / 2
	}
	return p.width
}

func (p *picker) resize(width, height int) {
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	p.width = width
	p.height = height

	listWidth := p.listWidth() - xx
	p.listC.SetSize(listWidth, height-yy)
	p.listC.Help.Width = listWidth
}

func (p *picker) selected() (Option, bool) {
	item, ok := p.listC.SelectedItem().(*listItem)
	if !ok {
		return Option{}, false
	}
	return item.option, true
}

func (p *picker) result() (Option, bool, error) {
	if p.chosen == nil {
		return Option{}, false, nil
	}
	return *p.chosen, true, nil
}
