package usecase

import (
	"context"
	"errors"

	"github.com/iho/walletledger/internal/domain"
)

// OperationOpen labels failures that happen while folding an opening history.
const OperationOpen = "open"

// Error type labels reported to the OperationRecorder.
const (
	ErrorTypeInsufficientFunds = "insufficient_funds"
	ErrorTypeNegativeAmount    = "negative_amount"
	ErrorTypeCurrencyMismatch  = "currency_mismatch"
	ErrorTypeInvalidAmount     = "invalid_amount"
	ErrorTypeAmountTooLarge    = "amount_too_large"
	ErrorTypeInvalidOperation  = "invalid_operation"
	ErrorTypeInvalidLabel      = "invalid_label"
	ErrorTypeInvalidCurrency   = "invalid_currency"
	ErrorTypeBalanceDrift      = "balance_drift"
	ErrorTypeCanceled          = "canceled"
	ErrorTypeUnknown           = "unknown"
)

var errorTypes = []struct {
	err  error
	name string
}{
	{domain.ErrInsufficientFunds, ErrorTypeInsufficientFunds},
	{domain.ErrNegativeAmount, ErrorTypeNegativeAmount},
	{domain.ErrCurrencyMismatch, ErrorTypeCurrencyMismatch},
	{domain.ErrInvalidAmount, ErrorTypeInvalidAmount},
	{domain.ErrAmountTooLarge, ErrorTypeAmountTooLarge},
	{domain.ErrInvalidOperation, ErrorTypeInvalidOperation},
	{domain.ErrOperationMismatch, ErrorTypeInvalidOperation},
	{domain.ErrInvalidLabel, ErrorTypeInvalidLabel},
	{domain.ErrInvalidCurrency, ErrorTypeInvalidCurrency},
	{domain.ErrBalanceDrift, ErrorTypeBalanceDrift},
	{context.Canceled, ErrorTypeCanceled},
	{context.DeadlineExceeded, ErrorTypeCanceled},
}

// ErrorType maps a domain error to its metric label.
func ErrorType(err error) string {
	for _, et := range errorTypes {
		if errors.Is(err, et.err) {
			return et.name
		}
	}
	return ErrorTypeUnknown
}
