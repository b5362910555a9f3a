package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/infrastructure/config"
	"github.com/iho/walletledger/internal/infrastructure/idgen"
	"github.com/iho/walletledger/internal/infrastructure/logger"
	"github.com/iho/walletledger/internal/infrastructure/metrics"
	"github.com/iho/walletledger/internal/usecase"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the dependencies built once flags and environment are parsed.
type app struct {
	logOut io.Writer

	currency  string
	logLevel  string
	logFormat string
	metricsOn bool

	log        zerolog.Logger
	registry   *prometheus.Registry
	wallets    *usecase.WalletUseCase
	reconciler *usecase.ReconciliationUseCase
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}

	rootCmd := &cobra.Command{
		Use:           "walletctl",
		Short:         "Wallet ledger CLI tool",
		Long:          `A command line interface for folding wallet movement histories into balances.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metricsOn {
				return nil
			}
			return metrics.WriteText(cmd.OutOrStdout(), a.registry)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.currency, "currency", "", "Wallet currency (default from WALLET_CURRENCY)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: json, console")
	rootCmd.PersistentFlags().BoolVar(&a.metricsOn, "metrics", false, "Print Prometheus metrics after the command")

	rootCmd.AddCommand(demoCmd(a))
	rootCmd.AddCommand(replayCmd(a))
	rootCmd.AddCommand(reconcileCmd(a))

	return rootCmd
}

// setup merges flags over environment configuration and wires the use cases.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.currency == "" {
		a.currency = cfg.Currency
	}
	if a.logLevel == "" {
		a.logLevel = cfg.LogLevel
	}
	if a.logFormat == "" {
		a.logFormat = cfg.LogFormat
	}
	a.metricsOn = a.metricsOn || cfg.MetricsEnabled

	limit, err := domain.ParseAmount(cfg.MaxMovementAmount, decimal.Zero)
	if err != nil {
		return fmt.Errorf("invalid MAX_MOVEMENT_AMOUNT %q: %w", cfg.MaxMovementAmount, err)
	}

	a.log = logger.New(logger.Config{Level: a.logLevel, Format: a.logFormat, Service: "walletctl", Out: a.logOut})
	a.registry = prometheus.NewRegistry()
	recorder := metrics.New(a.registry)

	a.wallets = usecase.NewWalletUseCase(idgen.NewULIDGenerator(), recorder, a.log, limit)
	a.reconciler = usecase.NewReconciliationUseCase(recorder, a.log)

	return nil
}
