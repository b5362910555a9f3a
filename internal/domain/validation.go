package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrInvalidLabel    = errors.New("invalid movement label")
)

// Validation constants
const (
	MaxMovementAmount = "1000000000000" // 1 trillion
	MaxLabelLength    = 255

	// Bounds on textual amounts, checked before any rescaling happens.
	MaxAmountLength   = 64
	MaxIntegerDigits  = 40
	MaxFractionDigits = 32
)

// Currency is an ISO 4217 code from the closed set the ledger supports.
type Currency string

const (
	USD Currency = "USD"
	ARS Currency = "ARS"
	EUR Currency = "EUR"
	BRL Currency = "BRL"
	GBP Currency = "GBP"
)

var validCurrencies = map[Currency]bool{
	USD: true, ARS: true, EUR: true, BRL: true, GBP: true,
}

// IsValid reports whether c belongs to the supported set.
func (c Currency) IsValid() bool {
	return validCurrencies[c]
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency normalizes and validates a currency code.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))

	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q is not a supported currency", ErrInvalidCurrency, code)
	}

	return c, nil
}

// ParseAmount parses a decimal movement amount and enforces the upper bound.
// Sign is not checked here; NewTransaction owns that rule.
func ParseAmount(raw string, limit decimal.Decimal) (decimal.Decimal, error) {
	amount, err := parseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}

	if !limit.IsZero() && amount.Abs().GreaterThan(limit) {
		return decimal.Zero, fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, limit.String())
	}

	return amount, nil
}

// parseDecimal parses raw and rejects values whose digit count would make
// comparison or rounding expensive. "1e20000000" is short text but a
// twenty-million-digit number once rescaled.
func parseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > MaxAmountLength {
		return decimal.Zero, fmt.Errorf("%w: longer than %d characters", ErrInvalidAmount, MaxAmountLength)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	exp := int64(amount.Exponent())
	if exp < -MaxFractionDigits {
		return decimal.Zero, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, MaxFractionDigits)
	}
	if exp > 0 && int64(amount.NumDigits())+exp > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: more than %d integer digits", ErrAmountTooLarge, MaxIntegerDigits)
	}

	return amount, nil
}

// DefaultAmountLimit returns MaxMovementAmount as a decimal.
func DefaultAmountLimit() decimal.Decimal {
	return decimal.RequireFromString(MaxMovementAmount)
}

// ValidateLabel validates a movement label
func ValidateLabel(label string) error {
	if !utf8.ValidString(label) {
		return fmt.Errorf("%w: label is not valid UTF-8", ErrInvalidLabel)
	}

	if utf8.RuneCountInString(label) > MaxLabelLength {
		return fmt.Errorf("%w: label exceeds %d characters", ErrInvalidLabel, MaxLabelLength)
	}

	return nil
}
