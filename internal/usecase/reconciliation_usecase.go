package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

// ReconciliationUseCase handles balance reconciliation operations
type ReconciliationUseCase struct {
	recorder OperationRecorder
	log      zerolog.Logger
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(recorder OperationRecorder, log zerolog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		recorder: recorder,
		log:      log,
	}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	Currency          domain.Currency
	Movements         int
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	LastChecked       time.Time
}

// ReconcileWallet folds the wallet history from scratch and compares the
// result with the balance the wallet carries.
func (uc *ReconciliationUseCase) ReconcileWallet(ctx context.Context, wallet domain.Wallet) (*ReconciliationResult, error) {
	return uc.ReconcileBalance(ctx, wallet, wallet.Balance().Amount())
}

// ReconcileBalance compares a balance recorded elsewhere (a statement, an
// external system) with the fold of the wallet history. recorded must be in
// the wallet currency.
func (uc *ReconciliationUseCase) ReconcileBalance(ctx context.Context, wallet domain.Wallet, recorded domain.Money) (*ReconciliationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	calculated, err := domain.NewBalance(wallet.Movements(), wallet.Currency())
	if err != nil {
		return nil, err
	}

	difference, err := recorded.Subtract(calculated.Amount())
	if err != nil {
		return nil, err
	}

	result := &ReconciliationResult{
		Currency:          wallet.Currency(),
		Movements:         wallet.Len(),
		RecordedBalance:   recorded.Amount(),
		CalculatedBalance: calculated.Amount().Amount(),
		Difference:        difference.Amount(),
		IsReconciled:      difference.IsZero(),
		LastChecked:       time.Now().UTC(),
	}

	uc.recorder.ReconciliationChecked(result.IsReconciled)

	event := uc.log.Info()
	if !result.IsReconciled {
		event = uc.log.Error()
	}
	event.
		Str("currency", result.Currency.String()).
		Int("movements", result.Movements).
		Str("recorded", recorded.StringFixed()).
		Str("calculated", calculated.Amount().StringFixed()).
		Str("difference", difference.StringFixed()).
		Bool("reconciled", result.IsReconciled).
		Msg("wallet reconciled")

	return result, nil
}

// Err returns domain.ErrBalanceDrift describing the mismatch, or nil when
// the balances agree.
func (r *ReconciliationResult) Err() error {
	if r.IsReconciled {
		return nil
	}
	return fmt.Errorf(
		"%w: recorded=%s calculated=%s difference=%s",
		domain.ErrBalanceDrift,
		r.RecordedBalance.StringFixed(domain.MoneyScale),
		r.CalculatedBalance.StringFixed(domain.MoneyScale),
		r.Difference.StringFixed(domain.MoneyScale),
	)
}

// CheckWalletConsistency returns domain.ErrBalanceDrift when the carried
// balance differs from the history fold.
func (uc *ReconciliationUseCase) CheckWalletConsistency(ctx context.Context, wallet domain.Wallet) error {
	result, err := uc.ReconcileWallet(ctx, wallet)
	if err != nil {
		return err
	}
	return result.Err()
}
