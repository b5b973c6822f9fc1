// Package tui draws the roster with Bubble Tea and turns key presses into
// roster.Store calls. It never edits roster state itself.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
	"github.com/splitbill/splitbill/internal/ui"
)

// friendItem adapts model.Friend to bubbles/list.Item
type friendItem struct {
	model.Friend
}

func (i friendItem) Title() string       { return i.Name }
func (i friendItem) Description() string { return ui.BalancePhrase(i.Friend) }
func (i friendItem) FilterValue() string { return i.Name }

// Custom delegate: name on one line, balance sentence under it.
type friendDelegate struct {
	selectedID *string
}

func (d friendDelegate) Height() int                               { return 2 }
func (d friendDelegate) Spacing() int                              { return 1 }
func (d friendDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d friendDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(friendItem)
	if !ok {
		return
	}
	name := it.Name
	if d.selectedID != nil && *d.selectedID == it.ID {
		name = selectedStyle.Render(" " + name + " ")
	} else {
		name = titleStyle.Render(name)
	}

	phrase := ui.BalancePhrase(it.Friend)
	switch {
	case it.Owed():
		phrase = owedStyle.Render(phrase)
	case it.Owes():
		phrase = successStyle.Render(phrase)
	default:
		phrase = mutedStyle.Render(phrase)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = accentStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s\n%s%s", prefix, name, "  ", phrase)
}

// Model is the Bubble Tea model for the roster screen.
type Model struct {
	store *roster.Store
	snap  roster.Snapshot

	list       list.Model
	selectedID *string
	keys       keyMap
	help       help.Model

	add   addForm
	split splitForm

	width, height int
}

// New builds the model over store.
func New(store *roster.Store) Model {
	sel := new(string)
	l := list.New(nil, friendDelegate{selectedID: sel}, 48, 20)
	l.Title = "Friends"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("friend", "friends")

	m := Model{
		store:      store,
		list:       l,
		selectedID: sel,
		keys:       newKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.refresh()
	return m
}

// Snapshot is the state the model last drew from.
func (m Model) Snapshot() roster.Snapshot { return m.snap }

// refresh pulls the store's snapshot and rebuilds the list items.
func (m *Model) refresh() tea.Cmd {
	m.snap = m.store.Snapshot()
	items := make([]list.Item, 0, len(m.snap.Roster))
	for _, f := range m.snap.Roster {
		items = append(items, friendItem{f})
	}
	*m.selectedID = ""
	if f, ok := m.snap.Selected(); ok {
		*m.selectedID = f.ID
	}
	return m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(max(20, ws.Width/2-4), max(6, ws.Height-8))
		return m, nil
	}

	km, isKey := msg.(tea.KeyMsg)
	if isKey && km.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// With a form open, ctrl keys still reach the roster: pick another
	// friend or flip the add panel without closing the form first.
	if _, rosterOnly := m.snap.View.(roster.RosterOnly); isKey && !rosterOnly {
		switch {
		case key.Matches(km, m.keys.nextFriend):
			m.list.CursorDown()
			return m.selectCursor(false)
		case key.Matches(km, m.keys.prevFriend):
			m.list.CursorUp()
			return m.selectCursor(false)
		case key.Matches(km, m.keys.formAdd):
			return m.toggleAdd()
		}
	}

	switch m.snap.View.(type) {
	case roster.AddingFriend:
		if isKey {
			return m.updateAdd(km)
		}
	case roster.SplittingWith:
		if isKey {
			return m.updateSplit(km)
		}
	}

	if isKey && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, m.keys.quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.toggleAdd):
			return m.toggleAdd()
		case key.Matches(km, m.keys.selectF):
			return m.selectCursor(true)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) toggleAdd() (tea.Model, tea.Cmd) {
	m.store.ToggleAddFriend()
	m.add = newAddForm()
	return m, m.refresh()
}

// selectCursor selects the friend under the list cursor. Unless toggle is
// set, a friend who is already selected stays selected.
func (m Model) selectCursor(toggle bool) (tea.Model, tea.Cmd) {
	it, ok := m.list.SelectedItem().(friendItem)
	if !ok {
		return m, nil
	}
	if cur, open := m.snap.Selected(); open && cur.ID == it.ID && !toggle {
		return m, nil
	}
	if f, ok := m.store.SelectFriend(it.ID); ok {
		m.split = newSplitForm(f)
	}
	return m, m.refresh()
}

func (m Model) updateAdd(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.cancel):
		m.store.ToggleAddFriend()
		return m, m.refresh()
	case km.String() == "tab" || km.String() == "shift+tab":
		m.add.cycle()
		return m, nil
	case key.Matches(km, m.keys.submit):
		if _, ok := m.store.AddFriend(m.add.name.Value(), m.add.image.Value()); !ok {
			m.add.err = "Name cannot be empty"
			return m, nil
		}
		cmd := m.refresh()
		m.list.Select(len(m.snap.Roster) - 1)
		return m, cmd
	}
	var cmd tea.Cmd
	m.add.err = ""
	m.add, cmd = m.add.update(km)
	return m, cmd
}

func (m Model) updateSplit(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.cancel):
		// same id again closes the form
		m.store.SelectFriend(m.split.friend.ID)
		return m, m.refresh()
	case key.Matches(km, m.keys.next):
		m.split.setFocus(m.split.focus + 1)
		return m, nil
	case key.Matches(km, m.keys.prev):
		m.split.setFocus(m.split.focus - 1)
		return m, nil
	case key.Matches(km, m.keys.submit):
		delta, err := m.split.submit()
		if err != nil {
			m.split.err = err.Error()
			return m, nil
		}
		m.store.SplitBill(delta)
		return m, m.refresh()
	case m.split.focus == fieldPayer && key.Matches(km, m.keys.payer):
		m.split.payer = m.split.payer.Other()
		return m, nil
	}
	var cmd tea.Cmd
	m.split.err = ""
	m.split, cmd = m.split.update(km)
	return m, cmd
}

func (m Model) View() string {
	_, selected := m.snap.Selected()
	addOpen := m.snap.AddFriendOpen()

	left := []string{m.list.View()}
	if addOpen {
		left = append(left, m.add.view())
	}
	left = append(left, m.help.ShortHelpView(m.keys.forView(m.snap.View)))
	sidebar := strings.Join(left, "\n")

	content := sidebar
	if selected {
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", m.split.view())
	}
	return panelBox.Render(content)
}

// Run starts the program over store and returns the final snapshot.
func Run(store *roster.Store, opts ...tea.ProgramOption) (roster.Snapshot, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(store), opts...)
	final, err := p.Run()
	if err != nil {
		return store.Snapshot(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Snapshot(), nil
	}
	return store.Snapshot(), nil
}
