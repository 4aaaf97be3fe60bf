package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/sharedvault-backend/internal/clock"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/pkg/workerpool"
)

// HistoryArchiver copies the ledger history of every vault into the analytics store.
type HistoryArchiver struct {
	ledger        VaultLedger
	repo          HistoryRepository
	metrics       ArchiverMetrics
	logger        *zap.Logger
	sleep         func(context.Context, time.Duration) error
	sleepDuration time.Duration
	idleDuration  time.Duration
	backoff       time.Duration
	workerCount   int
}

// NewHistoryArchiver builds a HistoryArchiver.
func NewHistoryArchiver(
	l VaultLedger,
	repo HistoryRepository,
	metrics ArchiverMetrics,
	logger *zap.Logger,
) (*HistoryArchiver, error) {
	if l == nil || repo == nil {
		return nil, errors.New("history archiver ledger and repository are required")
	}
	if metrics == nil {
		return nil, errors.New("history archiver metrics is required")
	}
	return &HistoryArchiver{
		ledger:        l,
		repo:          repo,
		metrics:       metrics,
		logger:        logger.Named("historyArchiver"),
		sleep:         clock.SleepWithContext,
		sleepDuration: archiverSleepDuration,
		idleDuration:  archiverIdleDuration,
		backoff:       archiverBackoffSleep,
		workerCount:   archiverWorkerCount,
	}, nil
}

// Run archives until the context is canceled.
func (a *HistoryArchiver) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := a.run(ctx); err != nil {
			a.logger.Warn("archive iteration failed, backing off", zap.Error(err), zap.Duration("sleep", a.backoff))
			if sleepErr := a.sleep(ctx, a.backoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (a *HistoryArchiver) run(ctx context.Context) (err error) {
	started := time.Now()
	var owners []model.Address
	var archived atomic.Int64
	defer func() {
		a.metrics.ObserveArchive(err, len(owners), int(archived.Load()), started)
	}()

	owners, err = a.ledger.AllVaultOwners(ctx)
	if err != nil {
		return fmt.Errorf("list vault owners: %w", err)
	}

	err = workerpool.Process(ctx, a.workerCount, owners, func(ctx context.Context, owner model.Address) error {
		n, err := a.archiveOwner(ctx, owner)
		archived.Add(int64(n))
		return err
	}, nil)
	if err != nil {
		return err
	}

	if archived.Load() == 0 {
		a.logger.Debug("no new history entries; sleeping", zap.Duration("sleep", a.idleDuration))
		return a.sleep(ctx, a.idleDuration)
	}
	a.logger.Info("history archived", zap.Int("owners", len(owners)), zap.Int64("entries", archived.Load()))
	return a.sleep(ctx, a.sleepDuration)
}

func (a *HistoryArchiver) archiveOwner(ctx context.Context, owner model.Address) (int, error) {
	maxID, found, err := a.repo.MaxHistoryID(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("max history id of %s: %w", owner, err)
	}
	entries, err := a.ledger.TransactionHistory(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("history of %s: %w", owner, err)
	}

	fresh := make([]model.TransactionHistory, 0, len(entries))
	for _, e := range entries {
		if !found || e.ID > maxID {
			fresh = append(fresh, e)
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}
	if err := a.repo.InsertHistory(ctx, owner, fresh); err != nil {
		return 0, fmt.Errorf("insert history of %s: %w", owner, err)
	}
	return len(fresh), nil
}
