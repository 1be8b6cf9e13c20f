// Package color names the terminal colors used by cine's plain (non-TUI) output.
package color

import "github.com/charmbracelet/lipgloss"

// ANSI colors, so output follows the user's terminal theme.
const (
	Red      = lipgloss.Color("1")
	Green    = lipgloss.Color("2")
	Yellow   = lipgloss.Color("3")
	Blue     = lipgloss.Color("4")
	Purple   = lipgloss.Color("5")
	Cyan     = lipgloss.Color("6")
	HiRed    = lipgloss.Color("9")
	HiPurple = lipgloss.Color("13")
)

// Orange highlights key hints in the picker.
const Orange = lipgloss.Color("#ffb703")
