package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// VaultReader is the read side of the session store.
	VaultReader interface {
		Member() model.Address
		Vault(id string) (model.Vault, error)
		Vaults() []model.Vault
		PendingDebit(vaultID string) model.Amount
		Request(id string) (model.WithdrawalRequest, error)
		Requests(vaultID string) []model.WithdrawalRequest
		Activity(vaultID string) []model.Transaction
		SyncedAt() time.Time
	}
	Withdrawals interface {
		Create(vaultID string, amount model.Amount, purpose string) (service.VoteResult, error)
		Approve(requestID string, actor model.Address) (service.VoteResult, error)
		Reject(requestID string, actor model.Address) (service.VoteResult, error)
	}
	Deposits interface {
		Deposit(ctx context.Context, vaultID string, amount model.Amount) (service.DepositReceipt, error)
	}
	Registrar interface {
		CreateVault(ctx context.Context, name string, members []model.Member, signaturesRequired int) (ledger.TxRef, error)
		InitializeRegistry(ctx context.Context) (ledger.TxRef, error)
	}
	// History serves ledger reads scoped to a cached vault.
	History interface {
		History(ctx context.Context, vaultID string) ([]model.TransactionHistory, error)
		HoldingAccount(ctx context.Context, vaultID string) (ledger.ResourceAccount, error)
	}
	Syncer interface {
		Sync(ctx context.Context) error
	}
)
