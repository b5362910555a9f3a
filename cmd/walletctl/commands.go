package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iho/walletledger/internal/adapter/movementfile"
	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the sample wallet and withdraw from it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runDemo(cmd, a); err != nil {
				return fmt.Errorf("error instantiating wallet: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wallet instantiated successfully")
			return nil
		},
	}
}

func runDemo(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()

	wallet, err := a.wallets.OpenWallet(ctx, usecase.OpenWalletInput{
		Currency: a.currency,
		Movements: []usecase.MovementInput{
			{Operation: string(domain.OperationDeposit), Amount: "50000", Label: "yesterday"},
			{Operation: string(domain.OperationWithdraw), Amount: "20000", Label: "yesterday"},
			{Operation: string(domain.OperationDeposit), Amount: "10000", Label: "today"},
			{Operation: string(domain.OperationDeposit), Amount: "70000", Label: "today"},
		},
	})
	if err != nil {
		return err
	}

	printBalance(cmd, wallet)

	result, err := a.wallets.ApplyMovement(ctx, wallet, usecase.MovementInput{
		Operation: string(domain.OperationWithdraw),
		Amount:    "20000",
		Label:     "today",
	})
	if err != nil {
		return err
	}

	printBalance(cmd, wallet)
	printBalance(cmd, result.Wallet)

	return nil
}

func replayCmd(a *app) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Apply a CSV movement file in order, rejecting overdrafts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movements, err := movementfile.ReadFile(args[0])
			if err != nil {
				return err
			}

			wallet, err := a.wallets.Replay(cmd.Context(), a.currency, movements)
			if err != nil {
				return err
			}

			if verify {
				if err := a.reconciler.CheckWalletConsistency(cmd.Context(), wallet); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Movements: %d\n", wallet.Len())
			printBalance(cmd, wallet)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", true, "Recompute the balance from history after the replay")

	return cmd
}

func reconcileCmd(a *app) *cobra.Command {
	var expected string

	cmd := &cobra.Command{
		Use:   "reconcile <file>",
		Short: "Fold a CSV movement file and compare it with a recorded balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movements, err := movementfile.ReadFile(args[0])
			if err != nil {
				return err
			}

			wallet, err := a.wallets.OpenWallet(cmd.Context(), usecase.OpenWalletInput{
				Currency:  a.currency,
				Movements: movements,
			})
			if err != nil {
				return err
			}

			recorded := wallet.Balance().Amount()
			if expected != "" {
				recorded, err = domain.NewMoneyFromString(expected, wallet.Currency())
				if err != nil {
					return fmt.Errorf("invalid --expected: %w", err)
				}
			}

			result, err := a.reconciler.ReconcileBalance(cmd.Context(), wallet, recorded)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Movements: %d\n", result.Movements)
			fmt.Fprintf(out, "Recorded balance: %s\n", result.RecordedBalance.StringFixed(domain.MoneyScale))
			fmt.Fprintf(out, "Calculated balance: %s\n", result.CalculatedBalance.StringFixed(domain.MoneyScale))
			fmt.Fprintf(out, "Reconciled: %v\n", result.IsReconciled)

			return result.Err()
		},
	}

	cmd.Flags().StringVar(&expected, "expected", "", "Balance recorded elsewhere to check against (default: the folded balance)")

	return cmd
}

func printBalance(cmd *cobra.Command, w domain.Wallet) {
	fmt.Fprintf(cmd.OutOrStdout(), "Current balance: %s\n", w.Balance().Amount().StringFixed())
}
