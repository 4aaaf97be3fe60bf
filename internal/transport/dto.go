package transport

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/service"
)

type sessionResponse struct {
	Member   string     `json:"member"`
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

type vaultResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Owner              string          `json:"owner"`
	Members            []string        `json:"members"`
	SignaturesRequired int             `json:"signatures_required"`
	Balance            decimal.Decimal `json:"balance"`
	PendingDebit       decimal.Decimal `json:"pending_debit"`
	CreatedAt          time.Time       `json:"created_at"`
}

type requestResponse struct {
	ID          string          `json:"id"`
	VaultID     string          `json:"vault_id"`
	RequesterID string          `json:"requester_id"`
	Amount      decimal.Decimal `json:"amount"`
	Purpose     string          `json:"purpose"`
	Approvals   []string        `json:"approvals"`
	Rejections  []string        `json:"rejections"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

type voteResponse struct {
	Request   requestResponse `json:"request"`
	Applied   bool            `json:"applied"`
	Finalized bool            `json:"finalized"`
}

type activityResponse struct {
	ID                  string           `json:"id"`
	VaultID             string           `json:"vault_id"`
	Type                string           `json:"type"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	From                string           `json:"from"`
	Purpose             string           `json:"purpose,omitempty"`
	WithdrawalRequestID string           `json:"withdrawal_request_id,omitempty"`
	Timestamp           time.Time        `json:"timestamp"`
}

type historyResponse struct {
	ID          uint64          `json:"id"`
	TxType      string          `json:"tx_type"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TxHash      string          `json:"tx_hash"`
	Timestamp   time.Time       `json:"timestamp"`
	ExecutedBy  string          `json:"executed_by"`
}

type depositResponse struct {
	TxHash       string           `json:"tx_hash"`
	HashRecorded bool             `json:"hash_recorded"`
	Activity     activityResponse `json:"activity"`
}

type accountResponse struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

type txResponse struct {
	TxHash string `json:"tx_hash,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type amountRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Purpose string          `json:"purpose"`
}

type memberRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type createVaultRequest struct {
	Name               string          `json:"name"`
	Members            []memberRequest `json:"members"`
	SignaturesRequired int             `json:"signatures_required"`
}

func (r amountRequest) baseUnits() (model.Amount, error) {
	amount, err := model.AmountFromDisplay(r.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return amount, nil
}

func (r createVaultRequest) members() ([]model.Member, error) {
	out := make([]model.Member, 0, len(r.Members))
	for _, m := range r.Members {
		addr, err := model.ParseAddress(m.Address)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		out = append(out, model.Member{Address: addr, Name: m.Name})
	}
	return out, nil
}

func toVault(v model.Vault, pending model.Amount) vaultResponse {
	return vaultResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Owner:              v.OwnerAddress.String(),
		Members:            addresses(v.Members),
		SignaturesRequired: v.SignaturesRequired,
		Balance:            v.Balance.Display(),
		PendingDebit:       pending.Display(),
		CreatedAt:          v.CreatedAt,
	}
}

func toRequest(r model.WithdrawalRequest) requestResponse {
	return requestResponse{
		ID:          r.ID,
		VaultID:     r.VaultID,
		RequesterID: r.RequesterID.String(),
		Amount:      r.Amount.Display(),
		Purpose:     r.Purpose,
		Approvals:   addresses(r.Approvals),
		Rejections:  addresses(r.Rejections),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		ExpiresAt:   r.ExpiresAt,
	}
}

func toVote(res service.VoteResult) voteResponse {
	return voteResponse{
		Request:   toRequest(res.Request),
		Applied:   res.Applied,
		Finalized: res.Finalized,
	}
}

func toActivity(t model.Transaction) activityResponse {
	out := activityResponse{
		ID:                  t.ID,
		VaultID:             t.VaultID,
		Type:                string(t.Type),
		From:                t.From.String(),
		Purpose:             t.Purpose,
		WithdrawalRequestID: t.WithdrawalRequestID,
		Timestamp:           t.Timestamp,
	}
	if t.Amount != nil {
		d := t.Amount.Display()
		out.Amount = &d
	}
	return out
}

func toHistory(h model.TransactionHistory) historyResponse {
	return historyResponse{
		ID:          h.ID,
		TxType:      string(h.TxType),
		From:        h.From.String(),
		To:          h.To.String(),
		Amount:      h.Amount.Display(),
		Description: h.Description,
		TxHash:      h.TxHash,
		Timestamp:   h.Timestamp,
		ExecutedBy:  h.ExecutedBy.String(),
	}
}

func addresses(list []model.Address) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.String())
	}
	return out
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
