// Package store is the in-memory cache of one member session: vaults as last
// confirmed by the ledger, withdrawal requests, optimistic debits projected by
// approved requests, and the local activity log.
//
// Reads return value copies. Writes go through Update, which stages every change
// and commits it as a whole, so readers never observe a half-applied mutation.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

var (
	// ErrVaultNotFound is returned for vault ids not present in the confirmed state.
	ErrVaultNotFound = errors.New("vault not found")
	// ErrRequestNotFound is returned for unknown withdrawal request ids.
	ErrRequestNotFound = errors.New("withdrawal request not found")
)

// ActivitySink receives every committed activity record in commit order.
// Sinks run synchronously after the commit and must not call back into the Store.
type ActivitySink func(model.Transaction)

// Option configures a Store.
type Option func(*Store)

// WithActivitySink registers a sink for committed activity records.
func WithActivitySink(sink ActivitySink) Option {
	return func(s *Store) {
		s.sinks = append(s.sinks, sink)
	}
}

// projection is an optimistic debit recorded when a request reaches quorum.
type projection struct {
	vaultID string
	amount  model.Amount
}

// Store holds the state of one member session.
type Store struct {
	member model.Address
	sinks  []ActivitySink
	// sinkMu is taken before mu is released so deliveries follow commit order.
	sinkMu sync.Mutex

	mu           sync.RWMutex
	vaults       map[string]model.Vault
	vaultOrder   []string
	requests     map[string]model.WithdrawalRequest
	requestOrder []string
	projections  map[string]projection
	activity     []model.Transaction
	syncedAt     time.Time
}

// New creates an empty store for member.
func New(member model.Address, opts ...Option) *Store {
	s := &Store{
		member:      member,
		vaults:      make(map[string]model.Vault),
		requests:    make(map[string]model.WithdrawalRequest),
		projections: make(map[string]projection),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Member returns the session member.
func (s *Store) Member() model.Address {
	return s.member
}

// Vault returns the projected vault: the confirmed record with pending optimistic debits applied.
func (s *Store) Vault(id string) (model.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectedVault(id, nil)
}

// ConfirmedVault returns the vault as last pulled from the ledger.
func (s *Store) ConfirmedVault(id string) (model.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vaults[id]
	if !ok {
		return model.Vault{}, fmt.Errorf("vault %s: %w", id, ErrVaultNotFound)
	}
	return v.Clone(), nil
}

// VaultByOwner returns the projected vault held under the owner account.
func (s *Store) VaultByOwner(owner model.Address) (model.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.vaultOrder {
		if s.vaults[id].OwnerAddress == owner {
			return s.projectedVault(id, nil)
		}
	}
	return model.Vault{}, fmt.Errorf("vault owned by %s: %w", owner, ErrVaultNotFound)
}

// Vaults returns all projected vaults in ledger order.
func (s *Store) Vaults() []model.Vault {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Vault, 0, len(s.vaultOrder))
	for _, id := range s.vaultOrder {
		v, err := s.projectedVault(id, nil)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}

// PendingDebit returns the sum of optimistic debits not yet superseded by a sync.
func (s *Store) PendingDebit(vaultID string) model.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return debitFor(vaultID, s.projections, nil)
}

// Request returns a withdrawal request by id.
func (s *Store) Request(id string) (model.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return model.WithdrawalRequest{}, fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
	}
	return r.Clone(), nil
}

// Requests returns the requests of a vault in creation order. An empty vaultID returns all requests.
func (s *Store) Requests(vaultID string) []model.WithdrawalRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRequests(s.requestOrder, s.requests, nil, func(r model.WithdrawalRequest) bool {
		return vaultID == "" || r.VaultID == vaultID
	})
}

// PendingRequests returns every pending request.
func (s *Store) PendingRequests() []model.WithdrawalRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRequests(s.requestOrder, s.requests, nil, model.WithdrawalRequest.IsPending)
}

// Activity returns the local activity log of a vault, oldest first. An empty vaultID returns the whole log.
func (s *Store) Activity(vaultID string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transaction, 0, len(s.activity))
	for _, t := range s.activity {
		if vaultID == "" || t.VaultID == vaultID {
			out = append(out, t)
		}
	}
	return out
}

// SyncedAt returns the time of the last applied sync, zero before the first one.
func (s *Store) SyncedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncedAt
}

// ApplySync replaces the confirmed state with a ledger pull. Vaults listed in
// stale could not be refreshed and keep their previous confirmed record; every
// other vault missing from refreshed is dropped. Optimistic debits of refreshed
// vaults are discarded so the confirmed balance wins.
func (s *Store) ApplySync(refreshed []model.Vault, stale []model.Address, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keepOwner := make(map[model.Address]struct{}, len(stale))
	for _, owner := range stale {
		keepOwner[owner] = struct{}{}
	}

	vaults := make(map[string]model.Vault, len(refreshed)+len(stale))
	order := make([]string, 0, len(refreshed)+len(stale))
	for _, id := range s.vaultOrder {
		v := s.vaults[id]
		if _, ok := keepOwner[v.OwnerAddress]; ok {
			vaults[id] = v
			order = append(order, id)
		}
	}
	for _, v := range refreshed {
		if _, seen := vaults[v.ID]; !seen {
			order = append(order, v.ID)
		}
		vaults[v.ID] = v.Clone()
	}

	projections := make(map[string]projection, len(s.projections))
	for requestID, p := range s.projections {
		if _, ok := vaults[p.vaultID]; !ok {
			continue
		}
		if isRefreshed(refreshed, p.vaultID) {
			continue
		}
		projections[requestID] = p
	}

	s.vaults = vaults
	s.vaultOrder = order
	s.projections = projections
	s.syncedAt = at
}

// Update runs fn against a staged transaction and commits the staged changes
// when fn returns nil. fn must not call other Store methods.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	tx := newTx(s)
	if err := fn(tx); err != nil {
		s.mu.Unlock()
		return err
	}
	appended := tx.commit()
	if len(s.sinks) == 0 || len(appended) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.sinkMu.Lock()
	s.mu.Unlock()
	defer s.sinkMu.Unlock()

	for _, t := range appended {
		for _, sink := range s.sinks {
			sink(t)
		}
	}
	return nil
}

func (s *Store) projectedVault(id string, staged map[string]projection) (model.Vault, error) {
	v, ok := s.vaults[id]
	if !ok {
		return model.Vault{}, fmt.Errorf("vault %s: %w", id, ErrVaultNotFound)
	}
	out := v.Clone()
	out.Balance = v.Balance.Sub(debitFor(id, s.projections, staged))
	return out, nil
}

func debitFor(vaultID string, committed, staged map[string]projection) model.Amount {
	var total model.Amount
	for requestID, p := range committed {
		if _, overridden := staged[requestID]; overridden {
			continue
		}
		if p.vaultID == vaultID {
			total += p.amount
		}
	}
	for _, p := range staged {
		if p.vaultID == vaultID {
			total += p.amount
		}
	}
	return total
}

func isRefreshed(refreshed []model.Vault, id string) bool {
	for _, v := range refreshed {
		if v.ID == id {
			return true
		}
	}
	return false
}

func filterRequests(
	order []string,
	committed map[string]model.WithdrawalRequest,
	staged map[string]model.WithdrawalRequest,
	keep func(model.WithdrawalRequest) bool,
) []model.WithdrawalRequest {
	out := make([]model.WithdrawalRequest, 0, len(order))
	for _, id := range order {
		r, ok := staged[id]
		if !ok {
			r = committed[id]
		}
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}
