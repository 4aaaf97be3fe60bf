package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

var (
	approvalVotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "approval_engine",
		Name:      "votes_total",
		Help:      "Count of create, approve and reject calls.",
	}, []string{"action", "status", "applied"})
	approvalTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "approval_engine",
		Name:      "transitions_total",
		Help:      "Count of withdrawal requests leaving pending, by final status.",
	}, []string{"status"})
)

// ApprovalEngine tracks metrics for the withdrawal approval engine.
type ApprovalEngine struct{}

func NewApprovalEngine() *ApprovalEngine {
	return &ApprovalEngine{}
}

func (m ApprovalEngine) ObserveVote(action string, err error, applied bool) {
	approvalVotesTotal.WithLabelValues(labelOrUnknown(action), status(err), strconv.FormatBool(applied)).Inc()
}

func (m ApprovalEngine) ObserveTransition(s model.RequestStatus) {
	approvalTransitionsTotal.WithLabelValues(labelOrUnknown(string(s))).Inc()
}
