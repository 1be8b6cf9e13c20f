package tui

import (
	"github.com/charmbracelet/bubbles/list"
)

type listItem struct {
	option Option
}

func (t *listItem) Title() string {
	return t.option.Label
}

func (t *listItem) Description() string {
	return t.option.Description
}

func (t *listItem) FilterValue() string {
	return t.option.Label
}

func toItems(options []Option) []list.Item {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = &listItem{option: o}
	}
	return items
}
