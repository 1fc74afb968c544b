package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount with cent precision. Currency is implicit:
// the storefront prices everything in a single currency.
type Money struct {
	amount decimal.Decimal
}

// maxAmount is the largest value a numeric(12,2) column holds.
var maxAmount = decimal.RequireFromString("9999999999.99")

// NewMoney rejects negative amounts and amounts above MaxMoney, and rounds to
// two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	rounded := amount.Round(2)
	if rounded.GreaterThan(maxAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, maxAmount.StringFixed(2))
	}
	return Money{amount: rounded}, nil
}

// MaxMoney is the largest amount that can be stored.
func MaxMoney() Money {
	return Money{amount: maxAmount}
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney is the additive identity.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a quantity; quantities are validated by callers.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Exceeds reports whether m is strictly greater than other.
func (m Money) Exceeds(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
