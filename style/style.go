// Package style wraps lipgloss for the one-off renderings used in command output.
package style

import "github.com/charmbracelet/lipgloss"

// Picker palette.
var (
	Base    = lipgloss.Color("#14181c")
	Text    = lipgloss.Color("#d8e0e8")
	Surface = lipgloss.Color("#2c3440")
	Accent  = lipgloss.Color("#01b4e4")
	Green   = lipgloss.Color("#90cea1")
	Red     = lipgloss.Color("#f38ba8")
)

// Semantic aliases of the palette.
var (
	AccentColor  = Accent
	SuccessColor = Green
	ErrorColor   = Red
	HiRed        = Red
	BorderColor  = Surface
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer that paints text in c.
func Fg(c lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)
