package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/sharedvault-backend/internal/clock"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
)

// RejectionPolicy decides when rejections finalize a pending request.
type RejectionPolicy int

const (
	// RejectionVeto finalizes on the first rejection.
	RejectionVeto RejectionPolicy = iota
	// RejectionQuorum finalizes once rejections reach the vault threshold.
	RejectionQuorum
	// RejectionUnreachable finalizes once the members without a rejection can no longer reach the threshold.
	RejectionUnreachable
)

var rejectionPolicyNames = map[RejectionPolicy]string{
	RejectionVeto:        "veto",
	RejectionQuorum:      "quorum",
	RejectionUnreachable: "unreachable",
}

func (p RejectionPolicy) String() string {
	if name, ok := rejectionPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("RejectionPolicy(%d)", int(p))
}

// ParseRejectionPolicy parses veto, quorum or unreachable.
func ParseRejectionPolicy(raw string) (RejectionPolicy, error) {
	for p, name := range rejectionPolicyNames {
		if strings.EqualFold(raw, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown rejection policy %q", raw)
}

func (p RejectionPolicy) finalizes(v model.Vault, r model.WithdrawalRequest) bool {
	switch p {
	case RejectionQuorum:
		return len(r.Rejections) >= v.SignaturesRequired
	case RejectionUnreachable:
		return len(v.Members)-len(r.Rejections) < v.SignaturesRequired
	default:
		return true
	}
}

const (
	actionCreate  = "create"
	actionApprove = "approve"
	actionReject  = "reject"
)

// VoteResult is the outcome of a Create, Approve or Reject call.
type VoteResult struct {
	Request model.WithdrawalRequest
	// Applied is false when the call was absorbed as a duplicate or hit a frozen request.
	Applied bool
	// Finalized is true when this call moved the request out of pending.
	Finalized bool
}

// EngineOption configures an ApprovalEngine.
type EngineOption func(*ApprovalEngine)

// WithEngineClock sets the clock used for timestamps and expiry windows.
func WithEngineClock(c clock.Clock) EngineOption {
	return func(e *ApprovalEngine) {
		e.clock = c
	}
}

// WithRejectionPolicy sets the rejection policy. RejectionVeto is the default.
func WithRejectionPolicy(p RejectionPolicy) EngineOption {
	return func(e *ApprovalEngine) {
		e.policy = p
	}
}

// WithIDGenerator overrides the generator of request and activity ids.
func WithIDGenerator(fn func() string) EngineOption {
	return func(e *ApprovalEngine) {
		e.newID = fn
	}
}

// ApprovalEngine is the quorum state machine of withdrawal requests.
// Quorum transitions are local projections; the next sync supersedes the balance they debit.
type ApprovalEngine struct {
	store   *store.Store
	trigger SyncTrigger
	metrics ApprovalMetrics
	logger  *zap.Logger
	clock   clock.Clock
	policy  RejectionPolicy
	newID   func() string
}

// NewApprovalEngine builds an ApprovalEngine over the session store.
func NewApprovalEngine(
	st *store.Store,
	trigger SyncTrigger,
	metrics ApprovalMetrics,
	logger *zap.Logger,
	opts ...EngineOption,
) (*ApprovalEngine, error) {
	if st == nil {
		return nil, errors.New("approval engine store is required")
	}
	if metrics == nil {
		return nil, errors.New("approval engine metrics is required")
	}
	e := &ApprovalEngine{
		store:   st,
		trigger: trigger,
		metrics: metrics,
		logger:  logger.Named("approvalEngine"),
		clock:   clock.New(),
		policy:  RejectionVeto,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Policy returns the configured rejection policy.
func (e *ApprovalEngine) Policy() RejectionPolicy {
	return e.policy
}

// Create opens a withdrawal request from the session member. The requester's
// approval is seeded, so a vault with a threshold of 1 approves immediately.
func (e *ApprovalEngine) Create(vaultID string, amount model.Amount, purpose string) (res VoteResult, err error) {
	defer func() {
		e.metrics.ObserveVote(actionCreate, err, res.Applied)
	}()

	purpose = strings.TrimSpace(purpose)
	if amount == 0 {
		return VoteResult{}, ErrInvalidAmount
	}
	if purpose == "" {
		return VoteResult{}, ErrInvalidPurpose
	}

	err = e.store.Update(func(tx *store.Tx) error {
		requester := tx.Member()
		v, err := tx.Vault(vaultID)
		if err != nil {
			return err
		}
		if !v.IsMember(requester) {
			return fmt.Errorf("%s in vault %s: %w", requester, vaultID, ErrNotMember)
		}
		if amount > v.Balance {
			return fmt.Errorf("%s > %s: %w", amount, v.Balance, ErrInsufficientBalance)
		}

		now := e.clock.Now()
		r := model.WithdrawalRequest{
			ID:          e.newID(),
			VaultID:     vaultID,
			RequesterID: requester,
			Amount:      amount,
			Purpose:     purpose,
			Approvals:   []model.Address{requester},
			Status:      model.StatusPending,
			CreatedAt:   now,
			ExpiresAt:   now.Add(model.WithdrawalWindow),
		}
		tx.Append(e.record(r, model.TxWithdrawalRequest, requester, &r.Amount, now))

		if len(r.Approvals) >= v.SignaturesRequired {
			if err := e.release(tx, &r, requester); err != nil {
				return err
			}
			res.Finalized = true
		}
		tx.PutRequest(r)
		res.Request = r
		res.Applied = true
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}

	e.logger.Info("withdrawal requested",
		zap.String("request", res.Request.ID),
		zap.String("vault", vaultID),
		zap.Stringer("amount", amount),
	)
	e.afterCommit(res)
	return res, nil
}

// Approve records actor's approval. Duplicate stances and frozen requests are silent no-ops.
// An approval that would reach quorum while the vault's projected balance is below the
// amount fails with ErrInsufficientBalance and leaves the request pending without the vote.
func (e *ApprovalEngine) Approve(requestID string, actor model.Address) (VoteResult, error) {
	return e.vote(actionApprove, requestID, actor, func(tx *store.Tx, v model.Vault, r *model.WithdrawalRequest, now time.Time) (bool, error) {
		r.Approvals = append(r.Approvals, actor)
		tx.Append(e.record(*r, model.TxApproval, actor, nil, now))
		if len(r.Approvals) < v.SignaturesRequired {
			return false, nil
		}
		if err := e.release(tx, r, actor); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Reject records actor's rejection and finalizes the request according to the rejection policy.
func (e *ApprovalEngine) Reject(requestID string, actor model.Address) (VoteResult, error) {
	return e.vote(actionReject, requestID, actor, func(tx *store.Tx, v model.Vault, r *model.WithdrawalRequest, now time.Time) (bool, error) {
		r.Rejections = append(r.Rejections, actor)
		tx.Append(e.record(*r, model.TxRejection, actor, nil, now))
		if !e.policy.finalizes(v, *r) {
			return false, nil
		}
		r.Status = model.StatusRejected
		return true, nil
	})
}

type applyVote func(tx *store.Tx, v model.Vault, r *model.WithdrawalRequest, now time.Time) (finalized bool, err error)

func (e *ApprovalEngine) vote(action, requestID string, actor model.Address, apply applyVote) (res VoteResult, err error) {
	defer func() {
		e.metrics.ObserveVote(action, err, res.Applied)
	}()

	err = e.store.Update(func(tx *store.Tx) error {
		r, err := tx.Request(requestID)
		if err != nil {
			return err
		}
		v, err := tx.Vault(r.VaultID)
		if err != nil {
			return err
		}
		if !v.IsMember(actor) {
			return fmt.Errorf("%s in vault %s: %w", actor, v.ID, ErrNotMember)
		}
		res.Request = r
		if !r.IsPending() || r.HasStance(actor) {
			return nil
		}

		finalized, err := apply(tx, v, &r, e.clock.Now())
		if err != nil {
			return err
		}
		res.Finalized = finalized
		res.Applied = true
		res.Request = r
		tx.PutRequest(r)
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}

	if !res.Applied {
		e.logger.Debug("vote absorbed",
			zap.String("action", action),
			zap.String("request", requestID),
			zap.Stringer("actor", actor),
			zap.String("status", string(res.Request.Status)),
		)
		return res, nil
	}
	e.logger.Info("vote recorded",
		zap.String("action", action),
		zap.String("request", requestID),
		zap.Stringer("actor", actor),
		zap.Int("approvals", len(res.Request.Approvals)),
		zap.Int("rejections", len(res.Request.Rejections)),
	)
	e.afterCommit(res)
	return res, nil
}

// SweepExpired moves every pending request past its window to expired and
// returns how many were expired.
func (e *ApprovalEngine) SweepExpired(now time.Time) int {
	var expired []string
	err := e.store.Update(func(tx *store.Tx) error {
		for _, r := range tx.PendingRequests() {
			if !r.ExpiredAt(now) {
				continue
			}
			r.Status = model.StatusExpired
			tx.PutRequest(r)
			tx.Append(e.record(r, model.TxRejection, model.SystemActor, nil, now))
			expired = append(expired, r.ID)
		}
		return nil
	})
	if err != nil {
		e.logger.Error("expiry sweep failed", zap.Error(err))
		return 0
	}
	for range expired {
		e.metrics.ObserveTransition(model.StatusExpired)
	}
	if len(expired) > 0 {
		e.logger.Info("withdrawal requests expired", zap.Strings("requests", expired))
	}
	return len(expired)
}

// release approves r and projects the debit on its vault. The debit must fit the
// projected balance, which earlier releases may have lowered since r was created.
func (e *ApprovalEngine) release(tx *store.Tx, r *model.WithdrawalRequest, actor model.Address) error {
	v, err := tx.Vault(r.VaultID)
	if err != nil {
		return err
	}
	if r.Amount > v.Balance {
		return fmt.Errorf("release %s: %s > %s: %w", r.ID, r.Amount, v.Balance, ErrInsufficientBalance)
	}
	now := e.clock.Now()
	r.Status = model.StatusApproved
	tx.ProjectDebit(r.ID, r.VaultID, r.Amount)
	tx.Append(e.record(*r, model.TxWithdrawalComplete, actor, &r.Amount, now))
	return nil
}

func (e *ApprovalEngine) record(
	r model.WithdrawalRequest,
	typ model.TransactionType,
	from model.Address,
	amount *model.Amount,
	at time.Time,
) model.Transaction {
	var copied *model.Amount
	if amount != nil {
		a := *amount
		copied = &a
	}
	return model.Transaction{
		ID:                  e.newID(),
		VaultID:             r.VaultID,
		Type:                typ,
		Amount:              copied,
		From:                from,
		Purpose:             r.Purpose,
		WithdrawalRequestID: r.ID,
		Timestamp:           at,
	}
}

func (e *ApprovalEngine) afterCommit(res VoteResult) {
	if !res.Finalized {
		return
	}
	e.metrics.ObserveTransition(res.Request.Status)
	if res.Request.Status == model.StatusApproved && e.trigger != nil {
		e.trigger.Trigger()
	}
}
