package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger view, submit and confirmation operations.",
	}, []string{"operation", "node", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger operations.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation", "node", "status"})
)

// LedgerClient tracks metrics for calls to the ledger node.
type LedgerClient struct {
	node string
}

// NewLedgerClient constructs a metrics collector for ledger calls against node.
func NewLedgerClient(node string) *LedgerClient {
	return &LedgerClient{node: labelOrUnknown(node)}
}

// Observe records a single ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	ledgerRequestsTotal.WithLabelValues(operation, m.node, s).Inc()
	ledgerRequestDuration.WithLabelValues(operation, m.node, s).Observe(time.Since(started).Seconds())
}
