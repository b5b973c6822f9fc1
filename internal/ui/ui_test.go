package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitbill/splitbill/internal/model"
	"github.com/splitbill/splitbill/internal/roster"
)

func plain(t *testing.T) {
	t.Helper()
	SetTheme("classic")
	SetColorForcing(false, true)
	t.Cleanup(func() { SetColorForcing(false, false) })
}

func TestBalancePhrase(t *testing.T) {
	tests := []struct {
		bal  int64
		want string
	}{
		{bal: -7, want: "You owe Clark 7$"},
		{bal: 20, want: "Clark owes you 20$"},
		{bal: 0, want: "You and Clark are even"},
	}
	for _, tc := range tests {
		f := model.Friend{Name: "Clark", Balance: decimal.NewFromInt(tc.bal)}
		assert.Equal(t, tc.want, BalancePhrase(f))
	}
}

func TestBalanceLine_Plain(t *testing.T) {
	plain(t)
	f := model.Friend{Name: "Sarah", Balance: decimal.NewFromInt(20)}
	assert.Equal(t, "↑ Sarah owes you 20$", BalanceLine(f))
}

func TestC_Forced(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
	assert.Equal(t, "x", C("", "x"))
}

func TestSettledBar(t *testing.T) {
	plain(t)
	assert.Equal(t, "█████░░░░░  50% settled", SettledBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0% settled", SettledBar(0, 0, 1))
}

func TestPanel_AlignsBorders(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "a"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"┌────┐", "│ ab │", "│ a  │", "└────┘"}, lines)
}

func TestRosterLines(t *testing.T) {
	plain(t)
	s := roster.New(roster.DefaultSeed())
	s.SelectFriend("933372")
	out := strings.Join(RosterLines(s.Snapshot()), "\n")

	assert.Contains(t, out, "Friends  ↑ 20$  ↓ 7$  Total 3")
	assert.Contains(t, out, "You owe Clark 7$")
	assert.Contains(t, out, ">  2. Sarah")
	assert.Contains(t, out, "You and Anthony are even")
}

func TestOKFail(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	OK(&buf, "split")
	Fail(&buf, "nope")
	assert.Equal(t, "✔ split\n✖ nope\n", buf.String())
}

func TestSetTheme_MonoThenClassicKeepsColor(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})

	SetTheme("mono")
	assert.Equal(t, "✔ ok", strings.TrimSpace(captureOK("ok")))

	SetTheme("classic")
	assert.Equal(t, fgGreen+"✔ ok"+reset, strings.TrimSpace(captureOK("ok")))
}

func captureOK(msg string) string {
	var buf bytes.Buffer
	OK(&buf, msg)
	return buf.String()
}
