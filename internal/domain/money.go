package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every Money value carries.
const MoneyScale int32 = 4

// Money is an immutable signed decimal amount tagged with a currency.
// The amount is always held at MoneyScale fractional digits.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney normalizes amount to MoneyScale digits, rounding half away from zero.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		amount:   amount.Round(MoneyScale),
		currency: currency,
	}
}

// NewMoneyFromString parses a decimal string into Money.
func NewMoneyFromString(raw string, currency Currency) (Money, error) {
	amount, err := parseDecimal(raw)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(amount, currency), nil
}

// ZeroMoney returns zero in the given currency.
func ZeroMoney(currency Currency) Money {
	return NewMoney(decimal.Zero, currency)
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }
func (m Money) IsPositive() bool        { return m.amount.IsPositive() }

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Negate returns m with its sign flipped.
func (m Money) Negate() Money {
	return NewMoney(m.amount.Neg(), m.currency)
}

// Add returns m + other. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return NewMoney(m.amount.Add(other.amount), m.currency), nil
}

// Subtract returns m - other. The result may be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrCurrencyMismatch, other.currency, m.currency)
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency), nil
}

// BiggerThan compares magnitudes only; currencies are not checked.
func (m Money) BiggerThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// StringFixed renders the amount with MoneyScale digits, without currency.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) String() string {
	return m.StringFixed() + " " + string(m.currency)
}
