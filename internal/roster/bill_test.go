package roster

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitbill/splitbill/internal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBillDelta(t *testing.T) {
	tests := []struct {
		name    string
		bill    Bill
		want    string
		wantErr error
	}{
		{name: "user pays", bill: Bill{Value: d("100"), MyExpense: d("40"), Payer: model.PayerUser}, want: "60"},
		{name: "friend pays", bill: Bill{Value: d("50"), MyExpense: d("20"), Payer: model.PayerFriend}, want: "-20"},
		{name: "blank expense, user pays", bill: Bill{Value: d("30"), Payer: model.PayerUser}, want: "30"},
		{name: "blank expense, friend pays", bill: Bill{Value: d("30"), Payer: model.PayerFriend}, want: "0"},
		{name: "fractional", bill: Bill{Value: d("12.40"), MyExpense: d("5.15"), Payer: model.PayerUser}, want: "7.25"},
		{name: "expense clamped, user pays", bill: Bill{Value: d("80"), MyExpense: d("120"), Payer: model.PayerUser}, want: "0"},
		{name: "expense clamped, friend pays", bill: Bill{Value: d("80"), MyExpense: d("120"), Payer: model.PayerFriend}, want: "-80"},
		{name: "zero bill", bill: Bill{Value: d("0"), MyExpense: d("0"), Payer: model.PayerUser}, wantErr: ErrBillValue},
		{name: "negative bill", bill: Bill{Value: d("-5"), Payer: model.PayerUser}, wantErr: ErrBillValue},
		{name: "negative expense", bill: Bill{Value: d("10"), MyExpense: d("-1"), Payer: model.PayerUser}, wantErr: ErrNegativeExpense},
		{name: "no payer", bill: Bill{Value: d("10"), MyExpense: d("1")}, wantErr: ErrUnknownPayer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.bill.Delta()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tc.want).Equal(got), "delta = %s, want %s", got, tc.want)
		})
	}
}

func TestBillClamped(t *testing.T) {
	b := Bill{Value: d("100"), MyExpense: d("150")}.Clamped()
	assert.Equal(t, "100", b.MyExpense.String())
	assert.True(t, Bill{Value: d("100"), MyExpense: d("150")}.FriendExpense().IsZero())

	b = Bill{Value: d("100"), MyExpense: d("40")}.Clamped()
	assert.Equal(t, "40", b.MyExpense.String())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "0"},
		{in: "  ", want: "0"},
		{in: "42", want: "42"},
		{in: " 3.50 ", want: "3.5"},
		{in: "12$", want: "12"},
		{in: "-4", want: "-4"},
		{in: "abc", wantErr: true},
		{in: "1e99999999", wantErr: true},
		{in: "2E3", wantErr: true},
		{in: "0.000000001", wantErr: true},
		{in: "0.00000001", want: "0.00000001"},
		{in: "999999999999999", want: "999999999999999"},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseAmount(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseAmount(%q)", tc.in)
		assert.Equal(t, tc.want, got.String(), "ParseAmount(%q)", tc.in)
	}
}

func TestTotals(t *testing.T) {
	owed, owe := Totals(Snapshot{Roster: DefaultSeed()})
	assert.Equal(t, "20", owed.String())
	assert.Equal(t, "7", owe.String())
}
