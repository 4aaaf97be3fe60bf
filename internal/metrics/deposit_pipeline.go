package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	depositTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "deposit_pipeline",
		Name:      "deposits_total",
		Help:      "Count of deposits by outcome of the transfer phase.",
	}, []string{"status"})
	depositDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "deposit_pipeline",
		Name:      "deposit_duration_seconds",
		Help:      "Duration of deposits including confirmation waits.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"status"})
	depositHashRecordTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "deposit_pipeline",
		Name:      "hash_records_total",
		Help:      "Count of attempts to record deposit hashes in the ledger history.",
	}, []string{"status"})
)

// DepositPipeline tracks metrics for the two-phase deposit flow.
type DepositPipeline struct{}

func NewDepositPipeline() *DepositPipeline {
	return &DepositPipeline{}
}

func (m DepositPipeline) ObserveDeposit(err error, started time.Time) {
	s := status(err)
	depositTotal.WithLabelValues(s).Inc()
	depositDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
}

func (m DepositPipeline) ObserveHashRecord(err error) {
	depositHashRecordTotal.WithLabelValues(status(err)).Inc()
}
