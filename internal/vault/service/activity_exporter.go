package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
	"github.com/goodnatureofminers/sharedvault-backend/pkg/batcher"
)

// ActivityExporter streams committed activity records to the analytics store.
type ActivityExporter struct {
	batcher *batcher.Batcher[model.Transaction]
	metrics ExporterMetrics
	logger  *zap.Logger
}

// NewActivityExporter builds an ActivityExporter writing records of member.
func NewActivityExporter(
	repo ActivityRepository,
	member model.Address,
	metrics ExporterMetrics,
	logger *zap.Logger,
) (*ActivityExporter, error) {
	if repo == nil {
		return nil, errors.New("activity exporter repository is required")
	}
	if metrics == nil {
		return nil, errors.New("activity exporter metrics is required")
	}
	logger = logger.Named("activityExporter")
	return &ActivityExporter{
		metrics: metrics,
		logger:  logger,
		batcher: batcher.New[model.Transaction](
			logger.Named("batcher"),
			func(ctx context.Context, records []model.Transaction) error {
				err := repo.InsertActivity(ctx, member, records)
				metrics.ObserveExport(err, len(records))
				return err
			},
			exporterFlushSize,
			exporterFlushInterval,
			exporterFlushPerSecond,
		),
	}, nil
}

// Start begins flushing in the background.
func (e *ActivityExporter) Start(ctx context.Context) {
	e.batcher.Start(ctx)
}

// Stop flushes buffered records and stops the exporter.
func (e *ActivityExporter) Stop() {
	e.batcher.Stop()
}

// Sink returns the store sink feeding this exporter. Records are dropped when
// the buffer is full so that store commits never block on the analytics store.
func (e *ActivityExporter) Sink() store.ActivitySink {
	return func(t model.Transaction) {
		if e.batcher.TryAdd(t) {
			return
		}
		e.metrics.ObserveDropped()
		e.logger.Warn("activity export buffer full, record dropped", zap.String("id", t.ID), zap.String("type", string(t.Type)))
	}
}
