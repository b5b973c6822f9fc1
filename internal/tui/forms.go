package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
)

// ---------------------------------------------------
// Add friend
// ---------------------------------------------------

type addForm struct {
	name  textinput.Model
	image textinput.Model
	focus int // 0 name, 1 image
	err   string
}

func newAddForm() addForm {
	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "Name"
	name.CharLimit = 60

	image := textinput.New()
	image.Prompt = "> "
	image.Placeholder = "Image URL (optional)"
	image.CharLimit = 300

	f := addForm{name: name, image: image}
	f.name.Focus()
	return f
}

func (f *addForm) cycle() {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.image.Blur()
		f.name.Focus()
		return
	}
	f.name.Blur()
	f.image.Focus()
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.image, cmd = f.image.Update(msg)
	}
	return f, cmd
}

func (f addForm) view() string {
	title := titleStyle.Render("👫 Add a friend")
	if f.err != "" {
		title += "  " + errorStyle.Render(f.err)
	}
	body := []string{
		title,
		label("Friend name", f.focus == 0),
		f.name.View(),
		label("Image URL", f.focus == 1),
		f.image.View(),
	}
	return formBox.Render(strings.Join(body, "\n"))
}

// ---------------------------------------------------
// Split bill
// ---------------------------------------------------

const (
	fieldBill = iota
	fieldMine
	fieldPayer
	fieldCount
)

type splitForm struct {
	friend model.Friend
	bill   textinput.Model
	mine   textinput.Model
	payer  model.Payer
	focus  int
	err    string
}

func newSplitForm(f model.Friend) splitForm {
	bill := textinput.New()
	bill.Prompt = "> "
	bill.Placeholder = "Bill amount"
	bill.CharLimit = 16

	mine := textinput.New()
	mine.Prompt = "> "
	mine.Placeholder = "My expense"
	mine.CharLimit = 16

	s := splitForm{friend: f, bill: bill, mine: mine, payer: model.PayerUser}
	s.bill.Focus()
	return s
}

func (s *splitForm) setFocus(i int) {
	s.focus = (i + fieldCount) % fieldCount
	s.bill.Blur()
	s.mine.Blur()
	switch s.focus {
	case fieldBill:
		s.bill.Focus()
	case fieldMine:
		s.mine.Focus()
	}
}

// values parses both fields, ignoring garbage so the preview stays usable.
func (s splitForm) values() (bill, mine decimal.Decimal) {
	bill, _ = roster.ParseAmount(s.bill.Value())
	mine, _ = roster.ParseAmount(s.mine.Value())
	return bill, mine
}

// clampMine keeps "my expense" from exceeding the bill while it is typed.
// Editing the bill leaves it alone; Bill.Delta clamps again on submit.
func (s *splitForm) clampMine() {
	bill, mine := s.values()
	if mine.GreaterThan(bill) {
		s.mine.SetValue(bill.String())
		s.mine.CursorEnd()
	}
}

// submit builds the bill; invalid input comes back as an error.
func (s splitForm) submit() (decimal.Decimal, error) {
	bill, err := roster.ParseAmount(s.bill.Value())
	if err != nil {
		return decimal.Zero, err
	}
	mine, err := roster.ParseAmount(s.mine.Value())
	if err != nil {
		return decimal.Zero, err
	}
	return roster.Bill{Value: bill, MyExpense: mine, Payer: s.payer}.Delta()
}

func (s splitForm) update(msg tea.Msg) (splitForm, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldBill:
		s.bill, cmd = s.bill.Update(msg)
	case fieldMine:
		s.mine, cmd = s.mine.Update(msg)
		s.clampMine()
	}
	return s, cmd
}

func (s splitForm) friendExpense() string {
	bill, mine := s.values()
	if !bill.IsPositive() {
		return ""
	}
	return roster.Bill{Value: bill, MyExpense: mine}.FriendExpense().String()
}

func (s splitForm) view() string {
	name := s.friend.Name
	payer := "Me"
	if s.payer == model.PayerFriend {
		payer = name
	}
	body := []string{
		titleStyle.Render("Split the bill with " + name),
		"",
		label("💸 Bill value", s.focus == fieldBill),
		s.bill.View(),
		label("🧍 Your expense", s.focus == fieldMine),
		s.mine.View(),
		label("👫 "+name+"'s expense", false),
		"  " + mutedStyle.Render(s.friendExpense()),
		label("💰 Who is paying the bill", s.focus == fieldPayer),
		"  ‹ " + accentStyle.Render(payer) + " ›",
	}
	if s.err != "" {
		body = append(body, "", errorStyle.Render(s.err))
	}
	return splitBox.Render(strings.Join(body, "\n"))
}
