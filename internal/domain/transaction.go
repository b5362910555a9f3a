package domain

import (
	"fmt"
	"strings"
)

// OperationType is the direction of a movement.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

func (o OperationType) IsValid() bool {
	return o == OperationDeposit || o == OperationWithdraw
}

// ParseOperationType accepts "deposit" or "withdraw" in any case.
func ParseOperationType(raw string) (OperationType, error) {
	op := OperationType(strings.ToLower(strings.TrimSpace(raw)))
	if !op.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, raw)
	}
	return op, nil
}

// Transaction is one validated movement. The amount is always unsigned;
// direction lives in the operation.
type Transaction struct {
	amount    Money
	operation OperationType
	label     string
}

// NewTransaction validates and builds a Transaction.
func NewTransaction(amount Money, operation OperationType, label string) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrNegativeAmount, amount)
	}

	if !operation.IsValid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidOperation, operation)
	}

	return Transaction{amount: amount, operation: operation, label: label}, nil
}

func (t Transaction) Amount() Money            { return t.amount }
func (t Transaction) Operation() OperationType { return t.operation }
func (t Transaction) Label() string            { return t.label }

// SignedAmount projects the movement onto the balance: positive for
// deposits, negative for withdrawals.
func (t Transaction) SignedAmount() Money {
	if t.operation == OperationWithdraw {
		return t.amount.Negate()
	}
	return t.amount
}
