package domain

import (
	"errors"
	"testing"
)

func demoWallet(t *testing.T) Wallet {
	t.Helper()

	w, err := NewWallet(USD, []Transaction{
		mustTransaction(t, "50000", OperationDeposit),
		mustTransaction(t, "20000", OperationWithdraw),
		mustTransaction(t, "10000", OperationDeposit),
		mustTransaction(t, "70000", OperationDeposit),
	})
	if err != nil {
		t.Fatalf("failed to build wallet: %v", err)
	}
	return w
}

func TestNewWallet(t *testing.T) {
	w := demoWallet(t)

	if got := w.Balance().Amount().StringFixed(); got != "110000.0000" {
		t.Fatalf("expected 110000.0000, got %s", got)
	}
	if w.Len() != 4 {
		t.Fatalf("expected 4 movements, got %d", w.Len())
	}
	if w.Currency() != USD {
		t.Fatalf("expected USD wallet, got %s", w.Currency())
	}
}

func TestNewWallet_Empty(t *testing.T) {
	w, err := NewWallet(ARS, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !w.Balance().Amount().Equal(ZeroMoney(ARS)) || w.Len() != 0 {
		t.Fatalf("expected empty ARS wallet, got %s with %d movements", w.Balance().Amount(), w.Len())
	}
	if len(w.Movements()) != 0 {
		t.Fatalf("expected no movements")
	}
}

func TestNewWallet_InvalidCurrency(t *testing.T) {
	if _, err := NewWallet(Currency("XXX"), nil); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestWallet_WithdrawKeepsOriginal(t *testing.T) {
	w := demoWallet(t)

	next, err := w.Withdraw(mustTransaction(t, "20000", OperationWithdraw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := next.Balance().Amount().StringFixed(); got != "90000.0000" {
		t.Errorf("expected new balance 90000.0000, got %s", got)
	}
	if got := w.Balance().Amount().StringFixed(); got != "110000.0000" {
		t.Errorf("expected original balance 110000.0000, got %s", got)
	}
	if w.Len() != 4 || next.Len() != 5 {
		t.Errorf("expected 4 and 5 movements, got %d and %d", w.Len(), next.Len())
	}

	movements := next.Movements()
	if last := movements[len(movements)-1]; last.Operation() != OperationWithdraw {
		t.Errorf("expected the withdrawal to be appended last, got %s", last.Operation())
	}
}

func TestWallet_WithdrawInsufficientFunds(t *testing.T) {
	w, err := NewWallet(USD, []Transaction{mustTransaction(t, "100", OperationDeposit)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = w.Withdraw(mustTransaction(t, "150", OperationWithdraw))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if got := w.Balance().Amount().StringFixed(); got != "100.0000" {
		t.Errorf("expected balance to stay 100.0000, got %s", got)
	}
	if w.Len() != 1 {
		t.Errorf("expected history to stay at 1 movement, got %d", w.Len())
	}
}

func TestWallet_Deposit(t *testing.T) {
	w := demoWallet(t)

	next, err := w.Deposit(mustTransaction(t, "0.0001", OperationDeposit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := next.Balance().Amount().StringFixed(); got != "110000.0001" {
		t.Fatalf("expected 110000.0001, got %s", got)
	}
}

func TestWallet_Apply(t *testing.T) {
	w := demoWallet(t)

	next, err := w.Apply(mustTransaction(t, "110000", OperationWithdraw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.Balance().Amount().IsZero() {
		t.Fatalf("expected zero balance, got %s", next.Balance().Amount())
	}

	next, err = next.Apply(mustTransaction(t, "5", OperationDeposit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := next.Balance().Amount().StringFixed(); got != "5.0000" {
		t.Fatalf("expected 5.0000, got %s", got)
	}

	if _, err := w.Apply(Transaction{}); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestWallet_BranchesAreIndependent(t *testing.T) {
	base := demoWallet(t)

	left, err := base.Deposit(mustTransaction(t, "1", OperationDeposit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	right, err := base.Withdraw(mustTransaction(t, "1", OperationWithdraw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	leftLast := left.Movements()[4]
	rightLast := right.Movements()[4]
	if leftLast.Operation() != OperationDeposit || rightLast.Operation() != OperationWithdraw {
		t.Fatalf("branches share their tail: %s / %s", leftLast.Operation(), rightLast.Operation())
	}

	for _, w := range []Wallet{base, left, right} {
		if err := w.Verify(); err != nil {
			t.Errorf("unexpected drift: %v", err)
		}
	}
}

func TestWallet_MovementsReturnsCopy(t *testing.T) {
	w := demoWallet(t)

	movements := w.Movements()
	movements[0] = mustTransaction(t, "999", OperationWithdraw)

	if got := w.Movements()[0].Amount().StringFixed(); got != "50000.0000" {
		t.Fatalf("wallet history was mutated through Movements: %s", got)
	}
}

func TestWallet_VerifyDetectsDrift(t *testing.T) {
	w := demoWallet(t)
	w.balance = mustBalance(t, "1")

	if err := w.Verify(); !errors.Is(err, ErrBalanceDrift) {
		t.Fatalf("expected ErrBalanceDrift, got %v", err)
	}
}
