package transport

import (
	"errors"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SyncService is the health service name reported for ledger sync.
const SyncService = "sharedvault.Sync"

// SyncHealth reflects ledger sync outcomes in the gRPC health service.
// The session reports NOT_SERVING until the first successful sync.
type SyncHealth struct {
	server *health.Server
	logger *zap.Logger

	mu      sync.Mutex
	serving bool
}

// NewSyncHealth returns a SyncHealth instance.
func NewSyncHealth(server *health.Server, logger *zap.Logger) (*SyncHealth, error) {
	if server == nil {
		return nil, errors.New("health server is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	server.SetServingStatus(SyncService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &SyncHealth{server: server, logger: logger.Named("syncHealth")}, nil
}

// Observe records a sync outcome. Pass it to Synchronizer.OnSync.
func (h *SyncHealth) Observe(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	serving := err == nil
	if serving == h.serving {
		return
	}
	h.serving = serving

	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		h.logger.Warn("ledger sync unhealthy", zap.Error(err))
	} else {
		h.logger.Info("ledger sync healthy")
	}
	h.server.SetServingStatus(SyncService, status)
}
