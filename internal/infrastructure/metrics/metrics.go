package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Movement metrics
	MovementsApplied *prometheus.CounterVec
	MovementErrors   *prometheus.CounterVec
	MovementAmount   *prometheus.HistogramVec

	// Wallet metrics
	WalletBalance *prometheus.GaugeVec

	// Reconciliation metrics
	Reconciliations *prometheus.CounterVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MovementsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletledger_movements_applied_total",
				Help: "Total movements applied to a wallet by operation",
			},
			[]string{"operation"},
		),
		MovementErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletledger_movement_errors_total",
				Help: "Total rejected movements by operation and error type",
			},
			[]string{"operation", "error_type"},
		),
		MovementAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletledger_movement_amount",
				Help:    "Movement amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"operation"},
		),

		WalletBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "walletledger_wallet_balance",
				Help: "Balance of the last wallet produced",
			},
			[]string{"currency"},
		),

		Reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletledger_reconciliations_total",
				Help: "Total reconciliation checks by result",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) MovementApplied(operation string, amount float64) {
	m.MovementsApplied.WithLabelValues(operation).Inc()
	m.MovementAmount.WithLabelValues(operation).Observe(amount)
}

func (m *Metrics) MovementFailed(operation, errorType string) {
	m.MovementErrors.WithLabelValues(operation, errorType).Inc()
}

func (m *Metrics) BalanceChanged(currency string, balance float64) {
	m.WalletBalance.WithLabelValues(currency).Set(balance)
}

func (m *Metrics) ReconciliationChecked(reconciled bool) {
	result := "reconciled"
	if !reconciled {
		result = "drift"
	}
	m.Reconciliations.WithLabelValues(result).Inc()
}

// WriteText writes every family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
