package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "sync_total",
		Help:      "Count of ledger sync attempts.",
	}, []string{"status"})
	syncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "sync_duration_seconds",
		Help:      "Duration of ledger syncs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	syncVaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "vaults_total",
		Help:      "Count of vault hydrations by outcome.",
	}, []string{"outcome"})
	syncLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful sync.",
	})
	sweepExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "expired_requests_total",
		Help:      "Count of withdrawal requests expired by the sweep.",
	})
)

// Synchronizer tracks metrics for the vault synchronizer.
type Synchronizer struct{}

// NewSynchronizer constructs a Synchronizer metrics collector.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{}
}

func (m Synchronizer) ObserveSync(err error, refreshed, failed int, started time.Time) {
	s := status(err)
	syncRunsTotal.WithLabelValues(s).Inc()
	syncDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	syncVaults.WithLabelValues("refreshed").Add(float64(refreshed))
	syncVaults.WithLabelValues("failed").Add(float64(failed))
	if err == nil {
		syncLastSuccess.SetToCurrentTime()
	}
}

func (m Synchronizer) ObserveSweep(expired int) {
	sweepExpiredTotal.Add(float64(expired))
}
