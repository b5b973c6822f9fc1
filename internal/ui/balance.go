package ui

import (
	"fmt"

	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
)

// BalancePhrase is the uncolored sentence for a friend's balance.
func BalancePhrase(f model.Friend) string {
	switch {
	case f.Owed():
		return fmt.Sprintf("You owe %s %s$", f.Name, f.Balance.Abs().String())
	case f.Owes():
		return fmt.Sprintf("%s owes you %s$", f.Name, f.Balance.String())
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// BalanceLine is BalancePhrase with the theme's symbol and color.
func BalanceLine(f model.Friend) string {
	t := Current()
	switch {
	case f.Owed():
		return C(t.Error, t.SymOwed+" "+BalancePhrase(f))
	case f.Owes():
		return C(t.Success, t.SymOwes+" "+BalancePhrase(f))
	default:
		return C(t.Muted, t.SymEven+" "+BalancePhrase(f))
	}
}

// RosterLines renders a snapshot for the plain `ls` output.
func RosterLines(snap roster.Snapshot) []string {
	t := Current()
	owed, owe := roster.Totals(snap)
	settled := 0
	for _, f := range snap.Roster {
		if f.Settled() {
			settled++
		}
	}

	lines := []string{
		fmt.Sprintf("%s  %s %s$  %s %s$  %s %d",
			C(t.Title, "Friends"),
			C(t.Success, t.SymOwes), owed.String(),
			C(t.Error, t.SymOwed), owe.String(),
			C(t.Accent, "Total"), len(snap.Roster)),
		C(t.Muted, SettledBar(settled, len(snap.Roster), 20)),
		"",
	}
	if len(snap.Roster) == 0 {
		return append(lines, C(t.Muted, "no friends yet"))
	}
	sel, hasSel := snap.Selected()
	for i, f := range snap.Roster {
		marker := " "
		if hasSel && sel.ID == f.ID {
			marker = C(t.Accent, ">")
		}
		lines = append(lines, fmt.Sprintf("%s %s %-12s %s",
			marker, C(t.Muted, fmt.Sprintf("%2d.", i+1)), f.Name, BalanceLine(f)))
	}
	return lines
}
