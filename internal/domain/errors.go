package domain

import "errors"

var (
	// Money errors
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidAmount    = errors.New("invalid amount")

	// Transaction errors
	ErrNegativeAmount    = errors.New("the amount cannot be negative")
	ErrInvalidOperation  = errors.New("invalid operation type")
	ErrOperationMismatch = errors.New("transaction operation does not match the requested movement")

	// Balance errors
	ErrInsufficientFunds = errors.New("the balance is not enough")
	ErrBalanceDrift      = errors.New("balance does not match movement history")
)
