package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/sharedvault-backend/internal/clock"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
	"github.com/goodnatureofminers/sharedvault-backend/pkg/workerpool"
)

// SyncConfig tunes the Synchronizer timers and fan-out.
type SyncConfig struct {
	Interval      time.Duration
	SweepInterval time.Duration
	Workers       int
}

// SyncOption configures a Synchronizer.
type SyncOption func(*Synchronizer)

// WithSyncClock sets the clock driving the sync and sweep timers.
func WithSyncClock(c clock.Clock) SyncOption {
	return func(s *Synchronizer) {
		s.clock = c
	}
}

// Synchronizer pulls the member's vaults from the ledger into the store and
// drives the expiry sweep.
type Synchronizer struct {
	ledger  VaultLedger
	store   *store.Store
	sweeper ExpirySweeper
	metrics SynchronizerMetrics
	logger  *zap.Logger
	clock   clock.Clock
	cfg     SyncConfig

	syncMu  sync.Mutex
	trigger chan struct{}

	hooksMu sync.RWMutex
	hooks   []func(error)

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSynchronizer builds a Synchronizer. sweeper may be nil when expiry is handled elsewhere.
func NewSynchronizer(
	ledger VaultLedger,
	st *store.Store,
	sweeper ExpirySweeper,
	metrics SynchronizerMetrics,
	logger *zap.Logger,
	cfg SyncConfig,
	opts ...SyncOption,
) (*Synchronizer, error) {
	if ledger == nil || st == nil {
		return nil, errors.New("synchronizer ledger and store are required")
	}
	if metrics == nil {
		return nil, errors.New("synchronizer metrics is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultSyncInterval
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultSyncWorkers
	}
	s := &Synchronizer{
		ledger:  ledger,
		store:   st,
		sweeper: sweeper,
		metrics: metrics,
		logger:  logger.Named("synchronizer"),
		clock:   clock.New(),
		cfg:     cfg,
		trigger: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// OnSync registers fn to be called after every sync attempt with its outcome.
func (s *Synchronizer) OnSync(fn func(err error)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Trigger requests a sync from the running loop. Pending triggers coalesce.
func (s *Synchronizer) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Sync pulls the member's vaults and applies them to the store. Per-vault
// failures keep the previous record and are only logged; an error is
// returned only when the vault listing itself fails, in which case the store
// is left untouched.
func (s *Synchronizer) Sync(ctx context.Context) (err error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	started := s.clock.Now()
	refreshed, failed := 0, 0
	defer func() {
		s.metrics.ObserveSync(err, refreshed, failed, started)
		s.notify(err)
	}()

	owners, err := s.ledger.AllVaultOwners(ctx)
	if err != nil {
		return fmt.Errorf("list vault owners: %w", err)
	}

	member := s.store.Member()
	results := workerpool.Map(ctx, s.cfg.Workers, owners, func(ctx context.Context, owner model.Address) (*model.Vault, error) {
		return s.hydrate(ctx, member, owner)
	})

	vaults := make([]model.Vault, 0, len(results))
	var stale []model.Address
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			stale = append(stale, r.Item)
			s.logger.Warn("vault refresh failed, keeping cached record", zap.Stringer("owner", r.Item), zap.Error(r.Err))
		case r.Value != nil:
			vaults = append(vaults, *r.Value)
		}
	}
	refreshed = len(vaults)

	s.store.ApplySync(vaults, stale, s.clock.Now())
	s.logger.Debug("sync applied",
		zap.Int("owners", len(owners)),
		zap.Int("refreshed", refreshed),
		zap.Int("failed", failed),
	)
	return nil
}

// hydrate returns nil without error when member does not belong to the vault.
func (s *Synchronizer) hydrate(ctx context.Context, member, owner model.Address) (*model.Vault, error) {
	ok, err := s.ledger.IsVaultMember(ctx, member, owner)
	if err != nil {
		return nil, fmt.Errorf("membership: %w", err)
	}
	if !ok {
		return nil, nil
	}
	info, err := s.ledger.VaultInfo(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("vault info: %w", err)
	}
	members, err := s.ledger.VaultMembers(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("vault members: %w", err)
	}
	v, err := model.NewVault(info.ID, info.Name, owner, members, info.SignaturesRequired, info.Balance, info.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Start runs an initial sync and then the sync, sweep and trigger loop until
// Stop is called or ctx is done. Calling Start on a running Synchronizer is a no-op.
func (s *Synchronizer) Start(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	syncTicker := s.clock.Ticker(s.cfg.Interval)
	sweepTicker := s.clock.Ticker(s.cfg.SweepInterval)

	go func(done chan struct{}) {
		defer close(done)
		defer syncTicker.Stop()
		defer sweepTicker.Stop()

		s.runSync(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-syncTicker.C:
				s.runSync(ctx)
			case <-s.trigger:
				s.runSync(ctx)
			case <-sweepTicker.C:
				s.sweep()
			}
		}
	}(s.done)

	s.logger.Info("synchronizer started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Duration("sweep_interval", s.cfg.SweepInterval),
	)
}

// Stop cancels the timers and waits for the loop to exit.
func (s *Synchronizer) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
	s.logger.Info("synchronizer stopped")
}

func (s *Synchronizer) runSync(ctx context.Context) {
	if err := s.Sync(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("sync failed, keeping cached vaults", zap.Error(err))
	}
}

func (s *Synchronizer) sweep() {
	if s.sweeper == nil {
		return
	}
	expired := s.sweeper.SweepExpired(s.clock.Now())
	s.metrics.ObserveSweep(expired)
}

func (s *Synchronizer) notify(err error) {
	s.hooksMu.RLock()
	defer s.hooksMu.RUnlock()
	for _, fn := range s.hooks {
		fn(err)
	}
}
