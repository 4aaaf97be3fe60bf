package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/pkg/safe"
)

const (
	viewAllVaultOwners   = "get_all_vault_owners"
	viewIsVaultMember    = "is_user_vault_member"
	viewVaultInfo        = "get_vault_info"
	viewVaultMembers     = "get_vault_members"
	viewTransactionLog   = "get_transaction_history"
	viewResourceAccount  = "get_vault_resource_account"
	vaultInfoFieldCount  = 7
	resourceAccountCount = 2
)

// VaultInfo is the decoded result of get_vault_info.
type VaultInfo struct {
	ID                 string
	Name               string
	SignaturesRequired int
	Balance            model.Amount
	CreatedAt          time.Time
}

// ResourceAccount is the ledger account holding a vault's funds.
type ResourceAccount struct {
	Address model.Address
	Balance model.Amount
}

// AllVaultOwners lists every vault owner known to the registry.
func (c *Client) AllVaultOwners(ctx context.Context) ([]model.Address, error) {
	res, err := c.View(ctx, viewAllVaultOwners)
	if err != nil {
		return nil, err
	}
	var owners []string
	if err := decodeFirst(res, &owners); err != nil {
		return nil, fmt.Errorf("decode %s: %w", viewAllVaultOwners, err)
	}
	return parseAddresses(owners)
}

// IsVaultMember reports whether user is a member of the vault owned by owner.
func (c *Client) IsVaultMember(ctx context.Context, user, owner model.Address) (bool, error) {
	res, err := c.View(ctx, viewIsVaultMember, user.String(), owner.String())
	if err != nil {
		return false, err
	}
	var member bool
	if err := decodeFirst(res, &member); err != nil {
		return false, fmt.Errorf("decode %s: %w", viewIsVaultMember, err)
	}
	return member, nil
}

// VaultInfo returns the vault header. Fields 2 and 3 of the tuple are reserved and skipped.
func (c *Client) VaultInfo(ctx context.Context, owner model.Address) (VaultInfo, error) {
	res, err := c.View(ctx, viewVaultInfo, owner.String())
	if err != nil {
		return VaultInfo{}, err
	}
	if len(res) < vaultInfoFieldCount {
		return VaultInfo{}, fmt.Errorf("decode %s: got %d fields, want %d", viewVaultInfo, len(res), vaultInfoFieldCount)
	}

	id, err := decodeU64(res[0])
	if err != nil {
		return VaultInfo{}, fmt.Errorf("decode vault id: %w", err)
	}
	var name string
	if err := json.Unmarshal(res[1], &name); err != nil {
		return VaultInfo{}, fmt.Errorf("decode vault name: %w", err)
	}
	required, err := decodeU64(res[4])
	if err != nil {
		return VaultInfo{}, fmt.Errorf("decode signatures required: %w", err)
	}
	requiredInt, err := safe.Int(required)
	if err != nil {
		return VaultInfo{}, fmt.Errorf("signatures required: %w", err)
	}
	balance, err := decodeU64(res[5])
	if err != nil {
		return VaultInfo{}, fmt.Errorf("decode balance: %w", err)
	}
	createdAt, err := decodeTimestamp(res[6])
	if err != nil {
		return VaultInfo{}, fmt.Errorf("decode created at: %w", err)
	}

	return VaultInfo{
		ID:                 strconv.FormatUint(id, 10),
		Name:               name,
		SignaturesRequired: requiredInt,
		Balance:            model.Amount(balance),
		CreatedAt:          createdAt,
	}, nil
}

// VaultMembers returns member addresses in ledger order.
func (c *Client) VaultMembers(ctx context.Context, owner model.Address) ([]model.Address, error) {
	res, err := c.View(ctx, viewVaultMembers, owner.String())
	if err != nil {
		return nil, err
	}
	var members []struct {
		Address string `json:"address"`
	}
	if err := decodeFirst(res, &members); err != nil {
		return nil, fmt.Errorf("decode %s: %w", viewVaultMembers, err)
	}
	raw := make([]string, 0, len(members))
	for _, m := range members {
		raw = append(raw, m.Address)
	}
	return parseAddresses(raw)
}

type historyEntry struct {
	ID          json.RawMessage `json:"id"`
	TxType      json.RawMessage `json:"tx_type"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      json.RawMessage `json:"amount"`
	Description string          `json:"description"`
	TxHash      string          `json:"tx_hash"`
	Timestamp   json.RawMessage `json:"timestamp"`
	ExecutedBy  string          `json:"executed_by"`
}

// TransactionHistory returns the ledger-confirmed history of a vault.
func (c *Client) TransactionHistory(ctx context.Context, owner model.Address) ([]model.TransactionHistory, error) {
	res, err := c.View(ctx, viewTransactionLog, owner.String())
	if err != nil {
		return nil, err
	}
	var entries []historyEntry
	if err := decodeFirst(res, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", viewTransactionLog, err)
	}

	out := make([]model.TransactionHistory, 0, len(entries))
	for i, e := range entries {
		h, err := convertHistory(e)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}

// ResourceAccount returns the holding account of the vault and its balance.
func (c *Client) ResourceAccount(ctx context.Context, owner model.Address) (ResourceAccount, error) {
	res, err := c.View(ctx, viewResourceAccount, owner.String())
	if err != nil {
		return ResourceAccount{}, err
	}
	if len(res) < resourceAccountCount {
		return ResourceAccount{}, fmt.Errorf("decode %s: got %d fields", viewResourceAccount, len(res))
	}
	var raw string
	if err := json.Unmarshal(res[0], &raw); err != nil {
		return ResourceAccount{}, fmt.Errorf("decode resource address: %w", err)
	}
	addr, err := model.ParseAddress(raw)
	if err != nil {
		return ResourceAccount{}, err
	}
	balance, err := decodeU64(res[1])
	if err != nil {
		return ResourceAccount{}, fmt.Errorf("decode resource balance: %w", err)
	}
	return ResourceAccount{Address: addr, Balance: model.Amount(balance)}, nil
}

func convertHistory(e historyEntry) (model.TransactionHistory, error) {
	id, err := decodeU64(e.ID)
	if err != nil {
		return model.TransactionHistory{}, fmt.Errorf("id: %w", err)
	}
	txType, err := decodeHistoryType(e.TxType)
	if err != nil {
		return model.TransactionHistory{}, err
	}
	amount, err := decodeU64(e.Amount)
	if err != nil {
		return model.TransactionHistory{}, fmt.Errorf("amount: %w", err)
	}
	ts, err := decodeTimestamp(e.Timestamp)
	if err != nil {
		return model.TransactionHistory{}, fmt.Errorf("timestamp: %w", err)
	}
	return model.TransactionHistory{
		ID:          id,
		TxType:      txType,
		From:        model.Address(e.From),
		To:          model.Address(e.To),
		Amount:      model.Amount(amount),
		Description: e.Description,
		TxHash:      e.TxHash,
		Timestamp:   ts,
		ExecutedBy:  model.Address(e.ExecutedBy),
	}, nil
}

// decodeHistoryType accepts the type either by name or by its u8 discriminant.
func decodeHistoryType(raw json.RawMessage) (model.HistoryType, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		switch t := model.HistoryType(name); t {
		case model.HistoryDeposit, model.HistoryWithdrawal, model.HistoryTransfer:
			return t, nil
		}
		if _, err := strconv.ParseUint(name, 10, 8); err != nil {
			return "", fmt.Errorf("unknown tx type %q", name)
		}
	}
	code, err := decodeU64(raw)
	if err != nil {
		return "", fmt.Errorf("tx type: %w", err)
	}
	switch code {
	case 0:
		return model.HistoryDeposit, nil
	case 1:
		return model.HistoryWithdrawal, nil
	case 2:
		return model.HistoryTransfer, nil
	default:
		return "", fmt.Errorf("unknown tx type %d", code)
	}
}

func decodeFirst(res []json.RawMessage, out any) error {
	if len(res) == 0 {
		return fmt.Errorf("empty view result")
	}
	return json.Unmarshal(res[0], out)
}

func decodeU64(raw json.RawMessage) (uint64, error) {
	return safe.ParseUint64(string(raw))
}

func decodeTimestamp(raw json.RawMessage) (time.Time, error) {
	secs, err := decodeU64(raw)
	if err != nil {
		return time.Time{}, err
	}
	s, err := safe.Int64(secs)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(s, 0).UTC(), nil
}

func parseAddresses(raw []string) ([]model.Address, error) {
	out := make([]model.Address, 0, len(raw))
	for _, r := range raw {
		a, err := model.ParseAddress(r)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
