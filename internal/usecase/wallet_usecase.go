package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

// WalletUseCase turns raw caller input into wallet transitions.
type WalletUseCase struct {
	idGen    IDGenerator
	recorder OperationRecorder
	log      zerolog.Logger
	limit    decimal.Decimal
}

// NewWalletUseCase creates a new WalletUseCase. A zero limit disables the
// per-movement amount bound.
func NewWalletUseCase(idGen IDGenerator, recorder OperationRecorder, log zerolog.Logger, limit decimal.Decimal) *WalletUseCase {
	return &WalletUseCase{
		idGen:    idGen,
		recorder: recorder,
		log:      log,
		limit:    limit,
	}
}

// MovementInput represents one raw movement.
type MovementInput struct {
	Operation string
	Amount    string
	Label     string
}

// OpenWalletInput represents input for opening a wallet from history.
type OpenWalletInput struct {
	Currency  string
	Movements []MovementInput
}

// MovementResult is the outcome of a successful ApplyMovement.
type MovementResult struct {
	OperationID string
	Transaction domain.Transaction
	Wallet      domain.Wallet
}

// BuildTransaction validates input and builds a transaction in currency.
func (uc *WalletUseCase) BuildTransaction(currency domain.Currency, input MovementInput) (domain.Transaction, error) {
	op, err := domain.ParseOperationType(input.Operation)
	if err != nil {
		return domain.Transaction{}, err
	}

	amount, err := domain.ParseAmount(input.Amount, uc.limit)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := domain.ValidateLabel(input.Label); err != nil {
		return domain.Transaction{}, err
	}

	return domain.NewTransaction(domain.NewMoney(amount, currency), op, input.Label)
}

// OpenWallet builds a wallet whose balance is folded from the given history.
// The history is taken as already settled, so no overdraft check is made.
func (uc *WalletUseCase) OpenWallet(ctx context.Context, input OpenWalletInput) (domain.Wallet, error) {
	log := uc.log.With().
		Str("operation", OperationOpen).
		Str("currency", input.Currency).
		Int("movements", len(input.Movements)).
		Logger()

	if err := ctx.Err(); err != nil {
		return domain.Wallet{}, uc.fail(log, OperationOpen, err, "wallet rejected")
	}

	currency, err := domain.ParseCurrency(input.Currency)
	if err != nil {
		return domain.Wallet{}, uc.fail(log, OperationOpen, err, "wallet rejected")
	}

	txs := make([]domain.Transaction, 0, len(input.Movements))
	for i, m := range input.Movements {
		tx, err := uc.BuildTransaction(currency, m)
		if err != nil {
			return domain.Wallet{}, uc.fail(log, OperationOpen, fmt.Errorf("movement %d: %w", i+1, err), "wallet rejected")
		}
		txs = append(txs, tx)
	}

	wallet, err := domain.NewWallet(currency, txs)
	if err != nil {
		return domain.Wallet{}, uc.fail(log, OperationOpen, err, "wallet rejected")
	}

	uc.observeBalance(wallet)
	log.Debug().
		Str("balance", wallet.Balance().Amount().StringFixed()).
		Msg("wallet opened")

	return wallet, nil
}

// ApplyMovement applies one movement to wallet. On failure wallet is
// unchanged and the domain error is returned as is.
func (uc *WalletUseCase) ApplyMovement(ctx context.Context, wallet domain.Wallet, input MovementInput) (*MovementResult, error) {
	operationID := uc.idGen.Generate()
	log := uc.log.With().
		Str("operation_id", operationID).
		Str("operation", input.Operation).
		Str("amount", input.Amount).
		Logger()

	if err := ctx.Err(); err != nil {
		return nil, uc.fail(log, input.Operation, err, "movement rejected")
	}

	tx, err := uc.BuildTransaction(wallet.Currency(), input)
	if err != nil {
		return nil, uc.fail(log, input.Operation, err, "movement rejected")
	}

	next, err := wallet.Apply(tx)
	if err != nil {
		return nil, uc.fail(log, string(tx.Operation()), err, "movement rejected")
	}

	uc.recorder.MovementApplied(string(tx.Operation()), tx.Amount().Amount().InexactFloat64())
	uc.observeBalance(next)

	log.Info().
		Str("label", tx.Label()).
		Str("balance", next.Balance().Amount().StringFixed()).
		Str("currency", next.Currency().String()).
		Msg("movement applied")

	return &MovementResult{
		OperationID: operationID,
		Transaction: tx,
		Wallet:      next,
	}, nil
}

// Replay applies movements one by one to an empty wallet, enforcing the
// overdraft rule at every step. The first failure aborts the replay.
func (uc *WalletUseCase) Replay(ctx context.Context, currency string, movements []MovementInput) (domain.Wallet, error) {
	wallet, err := uc.OpenWallet(ctx, OpenWalletInput{Currency: currency})
	if err != nil {
		return domain.Wallet{}, err
	}

	for i, m := range movements {
		result, err := uc.ApplyMovement(ctx, wallet, m)
		if err != nil {
			return domain.Wallet{}, fmt.Errorf("movement %d: %w", i+1, err)
		}
		wallet = result.Wallet
	}

	return wallet, nil
}

func (uc *WalletUseCase) fail(log zerolog.Logger, operation string, err error, msg string) error {
	errorType := ErrorType(err)
	uc.recorder.MovementFailed(operation, errorType)
	log.Warn().Err(err).Str("error_type", errorType).Msg(msg)
	return err
}

func (uc *WalletUseCase) observeBalance(w domain.Wallet) {
	uc.recorder.BalanceChanged(w.Currency().String(), w.Balance().Amount().Amount().InexactFloat64())
}
