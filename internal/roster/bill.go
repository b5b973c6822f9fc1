package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitbill/splitbill/internal/model"
)

var (
	ErrBillValue       = errors.New("bill value must be greater than zero")
	ErrNegativeExpense = errors.New("your expense cannot be negative")
	ErrUnknownPayer    = errors.New("payer must be user or friend")
)

// Amounts outside these exponents are refused; "1e99999999" would
// otherwise expand into a hundred-million-digit string.
const (
	minAmountExp = -8
	maxAmountExp = 12
)

// Bill is one split-bill form submission.
type Bill struct {
	Value     decimal.Decimal
	MyExpense decimal.Decimal
	Payer     model.Payer
}

// Clamped caps MyExpense at Value.
func (b Bill) Clamped() Bill {
	if b.MyExpense.GreaterThan(b.Value) {
		b.MyExpense = b.Value
	}
	return b
}

// FriendExpense is the friend's share of the bill.
func (b Bill) FriendExpense() decimal.Decimal {
	c := b.Clamped()
	return c.Value.Sub(c.MyExpense)
}

// Validate rejects bills that must not reach SplitBill.
func (b Bill) Validate() error {
	if !b.Value.IsPositive() {
		return ErrBillValue
	}
	if b.MyExpense.IsNegative() {
		return ErrNegativeExpense
	}
	if b.Payer != model.PayerUser && b.Payer != model.PayerFriend {
		return ErrUnknownPayer
	}
	return nil
}

// Delta is the change to the friend's balance. If you paid, they now owe
// you their share; if they paid, you owe them yours.
func (b Bill) Delta() (decimal.Decimal, error) {
	if err := b.Validate(); err != nil {
		return decimal.Zero, err
	}
	c := b.Clamped()
	if c.Payer == model.PayerUser {
		return c.FriendExpense(), nil
	}
	return c.MyExpense.Neg(), nil
}

// ParseAmount reads a form field. Blank reads as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "$"))
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("not a plain number: %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	if e := d.Exponent(); e < minAmountExp || e > maxAmountExp {
		return decimal.Zero, fmt.Errorf("amount out of range: %q", s)
	}
	return d, nil
}

// Totals sums what friends owe you and what you owe friends (as a positive amount).
func Totals(s Snapshot) (owedToYou, youOwe decimal.Decimal) {
	owedToYou, youOwe = decimal.Zero, decimal.Zero
	for _, f := range s.Roster {
		switch {
		case f.Owes():
			owedToYou = owedToYou.Add(f.Balance)
		case f.Owed():
			youOwe = youOwe.Add(f.Balance.Abs())
		}
	}
	return owedToYou, youOwe
}
