package domain

import "fmt"

// Wallet is the aggregate of a single-currency movement history and the
// balance derived from it. Every transition returns a new Wallet and leaves
// the receiver untouched.
type Wallet struct {
	currency  Currency
	balance   Balance
	movements *history
}

// NewWallet builds a wallet from an initial history, computing the balance
// from scratch.
func NewWallet(currency Currency, movements []Transaction) (Wallet, error) {
	if !currency.IsValid() {
		return Wallet{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	balance, err := NewBalance(movements, currency)
	if err != nil {
		return Wallet{}, err
	}

	return Wallet{
		currency:  currency,
		balance:   balance,
		movements: newHistory(movements),
	}, nil
}

func (w Wallet) Currency() Currency { return w.currency }
func (w Wallet) Balance() Balance   { return w.balance }
func (w Wallet) Len() int           { return w.movements.len() }

// Movements returns a copy of the history in chronological order.
func (w Wallet) Movements() []Transaction {
	return w.movements.slice()
}

// Withdraw appends t when the balance covers it.
func (w Wallet) Withdraw(t Transaction) (Wallet, error) {
	next, err := w.balance.Withdraw(t)
	if err != nil {
		return Wallet{}, err
	}
	return w.record(t, next), nil
}

// Deposit appends t.
func (w Wallet) Deposit(t Transaction) (Wallet, error) {
	next, err := w.balance.Deposit(t)
	if err != nil {
		return Wallet{}, err
	}
	return w.record(t, next), nil
}

// Apply routes t to Deposit or Withdraw according to its operation.
func (w Wallet) Apply(t Transaction) (Wallet, error) {
	switch t.Operation() {
	case OperationDeposit:
		return w.Deposit(t)
	case OperationWithdraw:
		return w.Withdraw(t)
	default:
		return Wallet{}, fmt.Errorf("%w: %q", ErrInvalidOperation, t.Operation())
	}
}

// Verify recomputes the balance from the history and compares it with the
// carried one.
func (w Wallet) Verify() error {
	recomputed, err := NewBalance(w.Movements(), w.currency)
	if err != nil {
		return err
	}

	if !recomputed.Equal(w.balance) {
		return fmt.Errorf("%w: carried %s, history folds to %s", ErrBalanceDrift, w.balance.Amount(), recomputed.Amount())
	}

	return nil
}

// record is the only place a successor wallet is assembled, so history and
// balance always advance together.
func (w Wallet) record(t Transaction, next Balance) Wallet {
	return Wallet{
		currency:  w.currency,
		balance:   next,
		movements: w.movements.append(t),
	}
}
