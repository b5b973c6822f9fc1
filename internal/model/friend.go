package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Friend is one roster entry.
// Balance < 0: you owe them. Balance > 0: they owe you.
type Friend struct {
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Image   string          `json:"image" yaml:"image"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// Owes reports whether the friend owes the user money.
func (f Friend) Owes() bool { return f.Balance.IsPositive() }

// Owed reports whether the user owes the friend money.
func (f Friend) Owed() bool { return f.Balance.IsNegative() }

// Settled reports a zero balance.
func (f Friend) Settled() bool { return f.Balance.IsZero() }

// Payer is whoever fronted the whole bill.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

// ParsePayer accepts "user" (or "me") and "friend".
func ParsePayer(s string) (Payer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user", "me", "":
		return PayerUser, nil
	case "friend":
		return PayerFriend, nil
	}
	return "", fmt.Errorf("unknown payer %q (want user or friend)", s)
}

// Other flips the payer.
func (p Payer) Other() Payer {
	if p == PayerFriend {
		return PayerUser
	}
	return PayerFriend
}
