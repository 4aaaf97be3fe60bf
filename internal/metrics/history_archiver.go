package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_archiver",
		Name:      "runs_total",
		Help:      "Count of archive iterations.",
	}, []string{"status"})
	archiveRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_archiver",
		Name:      "run_duration_seconds",
		Help:      "Duration of archive iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	archiveOwners = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_archiver",
		Name:      "owners_per_run",
		Help:      "Number of vault owners visited per iteration.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
	archiveEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_archiver",
		Name:      "entries_total",
		Help:      "Count of history entries archived.",
	})
)

// HistoryArchiver tracks metrics for the history archiver loop.
type HistoryArchiver struct{}

func NewHistoryArchiver() *HistoryArchiver {
	return &HistoryArchiver{}
}

func (m HistoryArchiver) ObserveArchive(err error, owners, entries int, started time.Time) {
	s := status(err)
	archiveRunsTotal.WithLabelValues(s).Inc()
	archiveRunDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	archiveOwners.Observe(float64(owners))
	archiveEntriesTotal.Add(float64(entries))
}
