package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cine-cli/cine/style"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const minPreviewWidth = 60

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	previewStyle          = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(style.BorderColor).
				Padding(0, 1)
)

func (p *picker) View() string {
	if p.quitting || p.chosen != nil {
		return ""
	}

	listView := listExtraPaddingStyle.Render(p.listC.View())
	if !p.showPreview() {
		return listView
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, listView, p.viewPreview())
}

func (p *picker) viewPreview() string {
	frameX, frameY := previewStyle.GetFrameSize()
	width := p.width - p.listWidth() - frameX - 1
	height := p.height - frameY - 2

	var text string
	if option, ok := p.selected(); ok {
		text = option.Preview
	}

	return previewStyle.Width(width).Render(renderPreview(text, width, height))
}

// renderPreview wraps text to width and cuts it to height lines.
func renderPreview(text string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if strings.TrimSpace(text) == "" {
		return style.Faint("No details")
	}

	// words first, then hard-wrap anything longer than a line
	wrapped := wrap.String(wordwrap.String(text, width), width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > height {
		lines = lines[:height]
		lines[height-1] = truncate.StringWithTail(lines[height-1], uint(width), "…")
	}

	return strings.Join(lines, "\n")
}
