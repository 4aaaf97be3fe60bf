package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/sharedvault-backend/internal/clock"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
)

// DepositReceipt describes a confirmed deposit.
type DepositReceipt struct {
	TxHash string
	// HashRecorded reports whether the hash was written to the ledger-side history.
	HashRecorded bool
	Activity     model.Transaction
}

// DepositPipeline moves funds into a vault in two phases: the transfer itself,
// then recording its hash in the vault history on the ledger. Only the first
// phase decides the outcome. The local balance is left to the next sync.
type DepositPipeline struct {
	submitter TransactionSubmitter
	wallet    Wallet
	store     *store.Store
	trigger   SyncTrigger
	metrics   DepositMetrics
	logger    *zap.Logger
	clock     clock.Clock
	newID     func() string
}

// NewDepositPipeline builds a DepositPipeline.
func NewDepositPipeline(
	submitter TransactionSubmitter,
	w Wallet,
	st *store.Store,
	trigger SyncTrigger,
	metrics DepositMetrics,
	logger *zap.Logger,
) (*DepositPipeline, error) {
	if submitter == nil || w == nil || st == nil {
		return nil, errors.New("deposit pipeline submitter, wallet and store are required")
	}
	if metrics == nil {
		return nil, errors.New("deposit pipeline metrics is required")
	}
	return &DepositPipeline{
		submitter: submitter,
		wallet:    w,
		store:     st,
		trigger:   trigger,
		metrics:   metrics,
		logger:    logger.Named("depositPipeline"),
		clock:     clock.New(),
		newID:     uuid.NewString,
	}, nil
}

// Deposit transfers amount base units from the member's wallet into the vault.
func (p *DepositPipeline) Deposit(ctx context.Context, vaultID string, amount model.Amount) (receipt DepositReceipt, err error) {
	started := p.clock.Now()
	defer func() {
		p.metrics.ObserveDeposit(err, started)
	}()

	if amount == 0 {
		return DepositReceipt{}, ErrInvalidAmount
	}
	v, err := p.store.Vault(vaultID)
	if err != nil {
		return DepositReceipt{}, err
	}
	connected, err := p.wallet.IsConnected(ctx)
	if err != nil {
		return DepositReceipt{}, fmt.Errorf("wallet status: %w", err)
	}
	if !connected {
		return DepositReceipt{}, ErrWalletNotConnected
	}

	ref, err := p.submitter.Submit(ctx, ledger.DepositToVault(v.OwnerAddress, amount), p.wallet)
	if err != nil {
		return DepositReceipt{}, fmt.Errorf("deposit to vault %s: %w", vaultID, err)
	}
	if err = p.submitter.AwaitConfirmation(ctx, ref); err != nil {
		return DepositReceipt{}, fmt.Errorf("confirm deposit %s: %w", ref.Hash, err)
	}
	if p.trigger != nil {
		p.trigger.Trigger()
	}

	deposited := amount
	receipt = DepositReceipt{
		TxHash: ref.Hash,
		Activity: model.Transaction{
			ID:        p.newID(),
			VaultID:   vaultID,
			Type:      model.TxDeposit,
			Amount:    &deposited,
			From:      p.store.Member(),
			Timestamp: p.clock.Now(),
		},
	}
	if err = p.store.Update(func(tx *store.Tx) error {
		tx.Append(receipt.Activity)
		return nil
	}); err != nil {
		return DepositReceipt{}, err
	}
	p.logger.Info("deposit confirmed",
		zap.String("vault", vaultID),
		zap.Stringer("amount", amount),
		zap.String("tx_hash", ref.Hash),
	)

	hashErr := p.recordHash(ctx, v.OwnerAddress, ref.Hash)
	p.metrics.ObserveHashRecord(hashErr)
	if hashErr != nil {
		p.logger.Warn("deposit succeeded but recording its hash failed",
			zap.String("vault", vaultID),
			zap.String("tx_hash", ref.Hash),
			zap.Error(hashErr),
		)
		return receipt, nil
	}
	receipt.HashRecorded = true
	return receipt, nil
}

func (p *DepositPipeline) recordHash(ctx context.Context, owner model.Address, hash string) error {
	ref, err := p.submitter.Submit(ctx, ledger.UpdateTransactionHash(owner, hash), p.wallet)
	if err != nil {
		return err
	}
	return p.submitter.AwaitConfirmation(ctx, ref)
}
