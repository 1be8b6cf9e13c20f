package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cine-cli/cine/query"
)

// Query asks for a search term, offering remembered terms as suggestions.
func Query(message string) (string, error) {
	input := survey.Input{
		Message: message,
		Suggest: query.SuggestMany,
	}

	var response string
	err := survey.AskOne(&input, &response)
	return strings.TrimSpace(response), err
}

// Input asks for a line of text.
func Input(message, fallback string) (string, error) {
	input := survey.Input{
		Message: message,
		Default: fallback,
	}

	var response string
	err := survey.AskOne(&input, &response)
	return strings.TrimSpace(response), err
}

// Secret asks for a value without echoing it.
func Secret(message string) (string, error) {
	password := survey.Password{Message: message}

	var response string
	err := survey.AskOne(&password, &response)
	return strings.TrimSpace(response), err
}

// Confirm asks a yes/no question.
func Confirm(message string, fallback bool) (bool, error) {
	confirm := survey.Confirm{
		Message: message,
		Default: fallback,
	}

	var response bool
	err := survey.AskOne(&confirm, &response)
	return response, err
}

// Choose asks for one of options.
func Choose(message string, options []string, fallback string) (string, error) {
	sel := survey.Select{
		Message: message,
		Options: options,
		Default: fallback,
	}

	var response string
	err := survey.AskOne(&sel, &response)
	return response, err
}

// Directory asks for a directory, completing paths, and expands a leading ~.
func Directory(message, fallback string) (string, error) {
	input := survey.Input{
		Message: message,
		Default: fallback,
		Suggest: completePath,
	}

	var response string
	if err := survey.AskOne(&input, &response); err != nil {
		return "", err
	}

	return expandHome(strings.TrimSpace(response)), nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func completePath(partial string) []string {
	matches, _ := filepath.Glob(expandHome(partial) + "*")
	return matches
}
