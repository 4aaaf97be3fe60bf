// Package transport exposes the session REST API and the gRPC health service.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

// VaultHandler serves the vault actions of the session member over REST.
type VaultHandler struct {
	reader      VaultReader
	withdrawals Withdrawals
	deposits    Deposits
	registrar   Registrar
	history     History
	syncer      Syncer
	logger      *zap.Logger
}

// VaultHandlerDeps groups the services behind the REST API.
type VaultHandlerDeps struct {
	Reader      VaultReader
	Withdrawals Withdrawals
	Deposits    Deposits
	Registrar   Registrar
	History     History
	Syncer      Syncer
}

// NewVaultHandler returns a VaultHandler instance.
func NewVaultHandler(deps VaultHandlerDeps, logger *zap.Logger) (*VaultHandler, error) {
	switch {
	case deps.Reader == nil:
		return nil, errors.New("vault reader is required")
	case deps.Withdrawals == nil:
		return nil, errors.New("withdrawals service is required")
	case deps.Deposits == nil:
		return nil, errors.New("deposits service is required")
	case deps.Registrar == nil:
		return nil, errors.New("registrar is required")
	case deps.History == nil:
		return nil, errors.New("history reader is required")
	case deps.Syncer == nil:
		return nil, errors.New("syncer is required")
	case logger == nil:
		return nil, errors.New("logger is required")
	}
	return &VaultHandler{
		reader:      deps.Reader,
		withdrawals: deps.Withdrawals,
		deposits:    deps.Deposits,
		registrar:   deps.Registrar,
		history:     deps.History,
		syncer:      deps.Syncer,
		logger:      logger.Named("vaultHandler"),
	}, nil
}

// Register binds the REST routes on mux.
func (h *VaultHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/session", h.session},
		{http.MethodGet, "/v1/vaults", h.listVaults},
		{http.MethodPost, "/v1/vaults", h.createVault},
		{http.MethodGet, "/v1/vaults/{id}", h.getVault},
		{http.MethodGet, "/v1/vaults/{id}/requests", h.listRequests},
		{http.MethodGet, "/v1/vaults/{id}/activity", h.listActivity},
		{http.MethodGet, "/v1/vaults/{id}/history", h.listHistory},
		{http.MethodGet, "/v1/vaults/{id}/account", h.holdingAccount},
		{http.MethodPost, "/v1/vaults/{id}/withdrawals", h.createWithdrawal},
		{http.MethodPost, "/v1/vaults/{id}/deposits", h.deposit},
		{http.MethodGet, "/v1/withdrawals/{id}", h.getRequest},
		{http.MethodPost, "/v1/withdrawals/{id}/approve", h.approve},
		{http.MethodPost, "/v1/withdrawals/{id}/reject", h.reject},
		{http.MethodPost, "/v1/sync", h.sync},
		{http.MethodPost, "/v1/registry/init", h.initializeRegistry},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (h *VaultHandler) session(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	res := sessionResponse{Member: h.reader.Member().String()}
	if at := h.reader.SyncedAt(); !at.IsZero() {
		res.SyncedAt = &at
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *VaultHandler) listVaults(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	vaults := h.reader.Vaults()
	out := make([]vaultResponse, 0, len(vaults))
	for _, v := range vaults {
		out = append(out, toVault(v, h.reader.PendingDebit(v.ID)))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *VaultHandler) getVault(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	id := params["id"]
	v, err := h.reader.Vault(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toVault(v, h.reader.PendingDebit(id)))
}

func (h *VaultHandler) listRequests(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	id := params["id"]
	if _, err := h.reader.Vault(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mapSlice(h.reader.Requests(id), toRequest))
}

func (h *VaultHandler) listActivity(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	id := params["id"]
	if _, err := h.reader.Vault(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mapSlice(h.reader.Activity(id), toActivity))
}

func (h *VaultHandler) listHistory(w http.ResponseWriter, r *http.Request, params map[string]string) {
	entries, err := h.history.History(r.Context(), params["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mapSlice(entries, toHistory))
}

func (h *VaultHandler) holdingAccount(w http.ResponseWriter, r *http.Request, params map[string]string) {
	account, err := h.history.HoldingAccount(r.Context(), params["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, accountResponse{
		Address: account.Address.String(),
		Balance: account.Balance.Display(),
	})
}

func (h *VaultHandler) getRequest(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	req, err := h.reader.Request(params["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toRequest(req))
}

func (h *VaultHandler) createWithdrawal(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var body amountRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	amount, err := body.baseUnits()
	if err != nil {
		h.writeError(w, err)
		return
	}
	res, err := h.withdrawals.Create(params["id"], amount, body.Purpose)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toVote(res))
}

func (h *VaultHandler) approve(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	res, err := h.withdrawals.Approve(params["id"], h.reader.Member())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toVote(res))
}

func (h *VaultHandler) reject(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	res, err := h.withdrawals.Reject(params["id"], h.reader.Member())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toVote(res))
}

func (h *VaultHandler) deposit(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var body amountRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	amount, err := body.baseUnits()
	if err != nil {
		h.writeError(w, err)
		return
	}
	receipt, err := h.deposits.Deposit(r.Context(), params["id"], amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, depositResponse{
		TxHash:       receipt.TxHash,
		HashRecorded: receipt.HashRecorded,
		Activity:     toActivity(receipt.Activity),
	})
}

func (h *VaultHandler) createVault(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var body createVaultRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	members, err := body.members()
	if err != nil {
		h.writeError(w, err)
		return
	}
	ref, err := h.registrar.CreateVault(r.Context(), body.Name, members, body.SignaturesRequired)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, txResponse{TxHash: ref.Hash})
}

func (h *VaultHandler) initializeRegistry(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ref, err := h.registrar.InitializeRegistry(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, txResponse{TxHash: ref.Hash})
}

// sync refreshes from the ledger. A failed refresh is not reported to the
// caller; the returned synced_at shows how stale the session is.
func (h *VaultHandler) sync(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if err := h.syncer.Sync(r.Context()); err != nil {
		h.logger.Warn("manual sync failed", zap.Error(err))
	}
	h.session(w, r, nil)
}

func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode body: %w", errBadRequest, err)
	}
	return nil
}

func (h *VaultHandler) writeError(w http.ResponseWriter, err error) {
	code := codeFor(err)
	status := httpStatusFor(err)
	if isServerError(status) {
		h.logger.Error("request failed", zap.Stringer("code", code), zap.Error(err))
	} else {
		h.logger.Debug("request refused", zap.Stringer("code", code), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Code: code.String(), Message: err.Error()})
}

func (h *VaultHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
