package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/splitbill/splitbill/internal/roster"
)

type keyMap struct {
	toggleAdd key.Binding
	selectF   key.Binding
	quit      key.Binding

	submit key.Binding
	cancel key.Binding
	next   key.Binding
	prev   key.Binding
	payer  key.Binding

	// usable while a form is open
	nextFriend key.Binding
	prevFriend key.Binding
	formAdd    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggleAdd: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add friend")),
		selectF:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		payer:  key.NewBinding(key.WithKeys("left", "right", " ", "p"), key.WithHelp("←/→", "who pays")),

		nextFriend: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n/p", "other friend")),
		prevFriend: key.NewBinding(key.WithKeys("ctrl+p")),
		formAdd:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "add friend")),
	}
}

// forView picks the hints for the open panel.
func (k keyMap) forView(v roster.View) []key.Binding {
	switch v.(type) {
	case roster.AddingFriend:
		closeAdd := k.formAdd
		closeAdd.SetHelp("ctrl+o", "close")
		return []key.Binding{k.submit, k.next, k.nextFriend, closeAdd, k.cancel}
	case roster.SplittingWith:
		return []key.Binding{k.next, k.payer, k.submit, k.nextFriend, k.formAdd, k.cancel}
	}
	return []key.Binding{k.toggleAdd, k.selectF, k.quit}
}
