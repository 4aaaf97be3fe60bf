package store

import (
	"fmt"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

// Tx stages a multi-record mutation of the Store. Reads through Tx observe the
// staged changes; nothing is visible to other readers until Update commits.
type Tx struct {
	s           *Store
	requests    map[string]model.WithdrawalRequest
	newRequests []string
	projections map[string]projection
	activity    []model.Transaction
}

func newTx(s *Store) *Tx {
	return &Tx{
		s:           s,
		requests:    make(map[string]model.WithdrawalRequest),
		projections: make(map[string]projection),
	}
}

// Member returns the session member.
func (tx *Tx) Member() model.Address {
	return tx.s.member
}

// Vault returns the projected vault including debits staged in this transaction.
func (tx *Tx) Vault(id string) (model.Vault, error) {
	return tx.s.projectedVault(id, tx.projections)
}

// Request returns the staged or committed request.
func (tx *Tx) Request(id string) (model.WithdrawalRequest, error) {
	if r, ok := tx.requests[id]; ok {
		return r.Clone(), nil
	}
	r, ok := tx.s.requests[id]
	if !ok {
		return model.WithdrawalRequest{}, fmt.Errorf("request %s: %w", id, ErrRequestNotFound)
	}
	return r.Clone(), nil
}

// PendingRequests returns every pending request as staged.
func (tx *Tx) PendingRequests() []model.WithdrawalRequest {
	order := append(append([]string(nil), tx.s.requestOrder...), tx.newRequests...)
	return filterRequests(order, tx.s.requests, tx.requests, model.WithdrawalRequest.IsPending)
}

// PutRequest stages a whole-record replacement of r.
func (tx *Tx) PutRequest(r model.WithdrawalRequest) {
	_, committed := tx.s.requests[r.ID]
	_, staged := tx.requests[r.ID]
	if !committed && !staged {
		tx.newRequests = append(tx.newRequests, r.ID)
	}
	tx.requests[r.ID] = r.Clone()
}

// ProjectDebit stages an optimistic debit of amount against the vault, keyed by the request that caused it.
func (tx *Tx) ProjectDebit(requestID, vaultID string, amount model.Amount) {
	tx.projections[requestID] = projection{vaultID: vaultID, amount: amount}
}

// Append stages an activity record.
func (tx *Tx) Append(t model.Transaction) {
	tx.activity = append(tx.activity, t)
}

func (tx *Tx) commit() []model.Transaction {
	s := tx.s
	for id, r := range tx.requests {
		s.requests[id] = r
	}
	s.requestOrder = append(s.requestOrder, tx.newRequests...)
	for id, p := range tx.projections {
		s.projections[id] = p
	}
	s.activity = append(s.activity, tx.activity...)
	return tx.activity
}
