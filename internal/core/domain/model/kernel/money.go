package kernel

import (
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable non-negative monetary amount in the platform currency
// (XOF, no subunits in practice, but decimal precision is preserved for fee
// values coming from the API).
//
// The zero value is a valid zero amount, which keeps Money convenient to use
// in aggregations: sums start from kernel.ZeroMoney() and grow with Add.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected with a ValueIsInvalidError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "+inf"))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromInt creates a Money from an integer number of currency units.
func NewMoneyFromInt(units int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(units))
}

// MustMoneyFromInt is a convenience constructor for policy constants and
// tests, where the amount is a literal known to be non-negative.
// It panics on a negative amount.
func MustMoneyFromInt(units int64) Money {
	m, err := NewMoneyFromInt(units)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromString parses a decimal string such as "7000" or "150.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// SubFloorZero returns m-other clamped at zero. This is the "remaining"
// arithmetic used everywhere in the ledger: remaining never goes negative.
func (m Money) SubFloorZero(other Money) Money {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return ZeroMoney()
	}
	return Money{amount: diff}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.String()
}
