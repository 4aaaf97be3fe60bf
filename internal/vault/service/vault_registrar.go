package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/wallet"
)

// VaultRegistrar submits vault creation and registry bootstrap transactions.
type VaultRegistrar struct {
	submitter TransactionSubmitter
	wallet    Wallet
	trigger   SyncTrigger
	metrics   RegistrarMetrics
	logger    *zap.Logger
	deployer  model.Address
}

// NewVaultRegistrar builds a VaultRegistrar. deployer is the module address allowed to initialize the registry.
func NewVaultRegistrar(
	submitter TransactionSubmitter,
	w Wallet,
	trigger SyncTrigger,
	deployer model.Address,
	metrics RegistrarMetrics,
	logger *zap.Logger,
) (*VaultRegistrar, error) {
	if submitter == nil || w == nil {
		return nil, errors.New("vault registrar submitter and wallet are required")
	}
	if metrics == nil {
		return nil, errors.New("vault registrar metrics is required")
	}
	return &VaultRegistrar{
		submitter: submitter,
		wallet:    w,
		trigger:   trigger,
		metrics:   metrics,
		logger:    logger.Named("vaultRegistrar"),
		deployer:  deployer,
	}, nil
}

// CreateVault creates a vault owned by the connected account. The creator is
// added as the first member when missing from members.
func (r *VaultRegistrar) CreateVault(
	ctx context.Context,
	name string,
	members []model.Member,
	signaturesRequired int,
) (ref ledger.TxRef, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveCreate(err, started)
	}()

	account, err := r.connectedAccount(ctx)
	if err != nil {
		return ledger.TxRef{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ledger.TxRef{}, fmt.Errorf("%w: name is required", ErrInvalidVault)
	}
	all := make([]model.Member, 0, len(members)+1)
	if !containsMember(members, account.Address) {
		all = append(all, model.Member{Address: account.Address, Name: creatorMemberName})
	}
	for _, m := range members {
		if containsMember(all, m.Address) {
			return ledger.TxRef{}, fmt.Errorf("%w: duplicate member %s", ErrInvalidVault, m.Address)
		}
		all = append(all, m)
	}
	if signaturesRequired < 1 || signaturesRequired > len(all) {
		return ledger.TxRef{}, fmt.Errorf("%w: signatures required must be between 1 and %d", ErrInvalidVault, len(all))
	}

	ref, err = r.submit(ctx, ledger.CreateVault(name, all, signaturesRequired))
	if err != nil {
		if errors.Is(err, ledger.ErrRegistryNotInitialized) {
			r.logger.Warn("vault registry not initialized, the deployer must initialize it", zap.Stringer("deployer", r.deployer))
		}
		return ledger.TxRef{}, fmt.Errorf("create vault %q: %w", name, err)
	}
	if r.trigger != nil {
		r.trigger.Trigger()
	}
	r.logger.Info("vault created",
		zap.String("name", name),
		zap.Int("members", len(all)),
		zap.Int("signatures_required", signaturesRequired),
		zap.String("tx_hash", ref.Hash),
	)
	return ref, nil
}

// InitializeRegistry bootstraps the global vault registry. An already
// initialized registry counts as success and yields an empty TxRef.
func (r *VaultRegistrar) InitializeRegistry(ctx context.Context) (ref ledger.TxRef, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveInitialize(err, started)
	}()

	account, err := r.connectedAccount(ctx)
	if err != nil {
		return ledger.TxRef{}, err
	}
	if account.Address != r.deployer {
		return ledger.TxRef{}, fmt.Errorf("%w: connected as %s", ErrNotDeployer, account.Address)
	}

	ref, err = r.submit(ctx, ledger.InitializeRegistry())
	switch {
	case errors.Is(err, ledger.ErrAlreadyExists):
		r.logger.Info("vault registry already initialized")
		return ledger.TxRef{}, nil
	case err != nil:
		return ledger.TxRef{}, fmt.Errorf("initialize registry: %w", err)
	}
	r.logger.Info("vault registry initialized", zap.String("tx_hash", ref.Hash))
	return ref, nil
}

func (r *VaultRegistrar) connectedAccount(ctx context.Context) (wallet.Account, error) {
	connected, err := r.wallet.IsConnected(ctx)
	if err != nil {
		return wallet.Account{}, fmt.Errorf("wallet status: %w", err)
	}
	if !connected {
		return wallet.Account{}, ErrWalletNotConnected
	}
	account, err := r.wallet.Account(ctx)
	if err != nil {
		return wallet.Account{}, fmt.Errorf("wallet account: %w", err)
	}
	return account, nil
}

func (r *VaultRegistrar) submit(ctx context.Context, call ledger.Call) (ledger.TxRef, error) {
	ref, err := r.submitter.Submit(ctx, call, r.wallet)
	if err != nil {
		return ledger.TxRef{}, err
	}
	if err := r.submitter.AwaitConfirmation(ctx, ref); err != nil {
		return ledger.TxRef{}, err
	}
	return ref, nil
}

func containsMember(members []model.Member, a model.Address) bool {
	for _, m := range members {
		if m.Address == a {
			return true
		}
	}
	return false
}
