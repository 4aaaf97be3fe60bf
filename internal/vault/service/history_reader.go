package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
)

// HistoryReader serves ledger reads scoped to cached vaults.
type HistoryReader struct {
	ledger VaultLedger
	store  *store.Store
}

// NewHistoryReader builds a HistoryReader.
func NewHistoryReader(l VaultLedger, st *store.Store) (*HistoryReader, error) {
	if l == nil || st == nil {
		return nil, errors.New("history reader ledger and store are required")
	}
	return &HistoryReader{ledger: l, store: st}, nil
}

// History returns the ledger history of the vault, oldest first.
func (h *HistoryReader) History(ctx context.Context, vaultID string) ([]model.TransactionHistory, error) {
	v, err := h.store.Vault(vaultID)
	if err != nil {
		return nil, err
	}
	entries, err := h.ledger.TransactionHistory(ctx, v.OwnerAddress)
	if err != nil {
		return nil, fmt.Errorf("history of vault %s: %w", vaultID, err)
	}
	return entries, nil
}

// HoldingAccount returns the ledger account holding the vault's funds.
func (h *HistoryReader) HoldingAccount(ctx context.Context, vaultID string) (ledger.ResourceAccount, error) {
	v, err := h.store.Vault(vaultID)
	if err != nil {
		return ledger.ResourceAccount{}, err
	}
	account, err := h.ledger.ResourceAccount(ctx, v.OwnerAddress)
	if err != nil {
		return ledger.ResourceAccount{}, fmt.Errorf("holding account of vault %s: %w", vaultID, err)
	}
	return account, nil
}
