package domain

import "fmt"

// Balance is the net position of a movement history in one currency.
type Balance struct {
	amount   Money
	currency Currency
}

// NewBalance folds the signed amounts of history, in order, starting at zero.
func NewBalance(history []Transaction, currency Currency) (Balance, error) {
	amount := ZeroMoney(currency)

	for i, t := range history {
		next, err := amount.Add(t.SignedAmount())
		if err != nil {
			return Balance{}, fmt.Errorf("movement %d: %w", i, err)
		}
		amount = next
	}

	return Balance{amount: amount, currency: currency}, nil
}

func (b Balance) Amount() Money      { return b.amount }
func (b Balance) Currency() Currency { return b.currency }

// Equal reports whether both balances hold the same amount and currency.
func (b Balance) Equal(other Balance) bool {
	return b.currency == other.currency && b.amount.Equal(other.amount)
}

// Withdraw returns the balance left after t. A withdrawal equal to the
// current amount is allowed and leaves zero.
func (b Balance) Withdraw(t Transaction) (Balance, error) {
	signed := t.SignedAmount()
	if signed.IsPositive() {
		return Balance{}, fmt.Errorf("%w: withdraw got a %s", ErrOperationMismatch, t.Operation())
	}

	next, err := b.amount.Add(signed)
	if err != nil {
		return Balance{}, err
	}

	if t.Amount().BiggerThan(b.amount) {
		return Balance{}, fmt.Errorf("%w: requested %s, available %s", ErrInsufficientFunds, t.Amount(), b.amount)
	}

	return Balance{amount: next, currency: b.currency}, nil
}

// Deposit returns the balance after t.
func (b Balance) Deposit(t Transaction) (Balance, error) {
	signed := t.SignedAmount()
	if signed.IsNegative() {
		return Balance{}, fmt.Errorf("%w: deposit got a %s", ErrOperationMismatch, t.Operation())
	}

	next, err := b.amount.Add(signed)
	if err != nil {
		return Balance{}, err
	}

	return Balance{amount: next, currency: b.currency}, nil
}
