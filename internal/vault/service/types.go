package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/wallet"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// VaultLedger is the read side of the ledger gateway.
	VaultLedger interface {
		AllVaultOwners(ctx context.Context) ([]model.Address, error)
		IsVaultMember(ctx context.Context, user, owner model.Address) (bool, error)
		VaultInfo(ctx context.Context, owner model.Address) (ledger.VaultInfo, error)
		VaultMembers(ctx context.Context, owner model.Address) ([]model.Address, error)
		TransactionHistory(ctx context.Context, owner model.Address) ([]model.TransactionHistory, error)
		ResourceAccount(ctx context.Context, owner model.Address) (ledger.ResourceAccount, error)
	}
	// TransactionSubmitter is the write side of the ledger gateway.
	TransactionSubmitter interface {
		Submit(ctx context.Context, call ledger.Call, signer ledger.Signer) (ledger.TxRef, error)
		AwaitConfirmation(ctx context.Context, ref ledger.TxRef) error
	}
	Wallet interface {
		IsConnected(ctx context.Context) (bool, error)
		Account(ctx context.Context) (wallet.Account, error)
		SignAndSubmitTransaction(ctx context.Context, payload wallet.Payload) (wallet.SubmitResult, error)
	}
	SyncTrigger interface {
		Trigger()
	}
	ExpirySweeper interface {
		SweepExpired(now time.Time) int
	}

	ApprovalMetrics interface {
		ObserveVote(action string, err error, applied bool)
		ObserveTransition(status model.RequestStatus)
	}
	SynchronizerMetrics interface {
		ObserveSync(err error, refreshed, failed int, started time.Time)
		ObserveSweep(expired int)
	}
	DepositMetrics interface {
		ObserveDeposit(err error, started time.Time)
		ObserveHashRecord(err error)
	}
	RegistrarMetrics interface {
		ObserveCreate(err error, started time.Time)
		ObserveInitialize(err error, started time.Time)
	}
	ArchiverMetrics interface {
		ObserveArchive(err error, owners, entries int, started time.Time)
	}
	ExporterMetrics interface {
		ObserveExport(err error, records int)
		ObserveDropped()
	}

	HistoryRepository interface {
		MaxHistoryID(ctx context.Context, owner model.Address) (uint64, bool, error)
		InsertHistory(ctx context.Context, owner model.Address, entries []model.TransactionHistory) error
	}
	ActivityRepository interface {
		InsertActivity(ctx context.Context, member model.Address, records []model.Transaction) error
	}
)

// SyncTriggerFunc adapts a function to SyncTrigger.
type SyncTriggerFunc func()

// Trigger calls f.
func (f SyncTriggerFunc) Trigger() {
	f()
}
