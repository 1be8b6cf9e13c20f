package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (p *picker) Init() tea.Cmd {
	return nil
}

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		return p, nil
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, p.keymap.forceQuit) {
			p.quitting = true
			return p, tea.Quit
		}

		// keys typed into the filter belong to the list
		if p.listC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, p.keymap.confirm):
			if option, ok := p.selected(); ok {
				p.chosen = &option
				return p, tea.Quit
			}
			return p, nil
		case bubblesKey.Matches(msg, p.keymap.togglePreview):
			p.preview = !p.preview
			p.resize(p.width, p.height)
			return p, nil
		case bubblesKey.Matches(msg, p.keymap.back):
			if p.listC.FilterState() == list.FilterApplied {
				break
			}
			p.quitting = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.listC, cmd = p.listC.Update(msg)
	return p, cmd
}
