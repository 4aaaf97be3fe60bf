package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exportBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "activity_exporter",
		Name:      "batches_total",
		Help:      "Count of activity batches written to the analytics store.",
	}, []string{"status"})
	exportRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "activity_exporter",
		Name:      "records_total",
		Help:      "Count of activity records by export outcome.",
	}, []string{"status"})
)

// ActivityExporter tracks metrics for the activity exporter.
type ActivityExporter struct{}

func NewActivityExporter() *ActivityExporter {
	return &ActivityExporter{}
}

func (m ActivityExporter) ObserveExport(err error, records int) {
	s := status(err)
	exportBatchesTotal.WithLabelValues(s).Inc()
	exportRecordsTotal.WithLabelValues(s).Add(float64(records))
}

func (m ActivityExporter) ObserveDropped() {
	exportRecordsTotal.WithLabelValues("dropped").Inc()
}
