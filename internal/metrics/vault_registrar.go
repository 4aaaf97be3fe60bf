package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrarSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vault_registrar",
		Name:      "submissions_total",
		Help:      "Count of vault creation and registry bootstrap submissions by outcome.",
	}, []string{"operation", "status"})
	registrarSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "vault_registrar",
		Name:      "submission_duration_seconds",
		Help:      "Duration of registrar submissions including confirmation waits.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"operation", "status"})
)

// VaultRegistrar tracks metrics for vault creation and registry bootstrap.
type VaultRegistrar struct{}

func NewVaultRegistrar() *VaultRegistrar {
	return &VaultRegistrar{}
}

func (m VaultRegistrar) ObserveCreate(err error, started time.Time) {
	m.observe("create_vault", err, started)
}

func (m VaultRegistrar) ObserveInitialize(err error, started time.Time) {
	m.observe("initialize_registry", err, started)
}

func (m VaultRegistrar) observe(operation string, err error, started time.Time) {
	s := status(err)
	registrarSubmissionsTotal.WithLabelValues(operation, s).Inc()
	registrarSubmissionDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
