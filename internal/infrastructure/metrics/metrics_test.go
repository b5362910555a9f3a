package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)
	require.NotNil(t, m.MovementsApplied)
	require.NotNil(t, m.WalletBalance)

	m.MovementApplied("deposit", 100)
	m.BalanceChanged("USD", 100)

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, metricFamilies)
}

func TestRecorderUpdatesCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.MovementApplied("deposit", 50000)
	m.MovementApplied("deposit", 10000)
	m.MovementApplied("withdraw", 20000)
	m.MovementFailed("withdraw", "insufficient_funds")
	m.BalanceChanged("USD", 40000)
	m.ReconciliationChecked(true)
	m.ReconciliationChecked(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MovementsApplied.WithLabelValues("deposit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MovementsApplied.WithLabelValues("withdraw")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MovementErrors.WithLabelValues("withdraw", "insufficient_funds")))
	assert.Equal(t, 40000.0, testutil.ToFloat64(m.WalletBalance.WithLabelValues("USD")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reconciliations.WithLabelValues("drift")))
}

func TestWriteText(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.MovementApplied("deposit", 1)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, registry))

	out := buf.String()
	assert.True(t, strings.Contains(out, `walletledger_movements_applied_total{operation="deposit"} 1`), out)
}
