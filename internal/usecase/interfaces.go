package usecase

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// OperationRecorder receives the outcome of every wallet operation.
// Implementations must be cheap and must not fail.
type OperationRecorder interface {
	MovementApplied(operation string, amount float64)
	MovementFailed(operation, errorType string)
	BalanceChanged(currency string, balance float64)
	ReconciliationChecked(reconciled bool)
}
