// Package tui provides the interactive pickers and prompts.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cine-cli/cine/key"
	"github.com/spf13/viper"
)

// ErrNoOptions is returned when there is nothing to pick from.
var ErrNoOptions = errors.New("nothing to choose from")

// Option is one choice in a picker.
type Option struct {
	Label       string
	Description string
	// Preview is shown next to the list when previews are enabled.
	Preview string
	Value   any
}

// Pick shows options and returns the chosen one.
// The boolean is false when the user backed out without choosing.
func Pick(title string, options []Option) (Option, bool, error) {
	if len(options) == 0 {
		return Option{}, false, ErrNoOptions
	}

	model := newPicker(title, options, viper.GetBool(key.PlayerImagePreview))

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return Option{}, false, err
	}

	return final.(*picker).result()
}

// PickValue is Pick for options whose values share a type.
func PickValue[T any](title string, options []Option) (T, bool, error) {
	var zero T

	chosen, ok, err := Pick(title, options)
	if err != nil || !ok {
		return zero, ok, err
	}

	value, isT := chosen.Value.(T)
	if !isT {
		return zero, false, nil
	}
	return value, true, nil
}
