package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Bridge error codes follow the EIP-1193 convention used by browser wallets.
const (
	codeUserRejected = 4001
	codeUnauthorized = 4100
)

const maxErrorBody = 4 << 10

// RemoteAdapter talks to a signer bridge that fronts the member's wallet over HTTP.
type RemoteAdapter struct {
	baseURL *url.URL
	client  *http.Client
}

var _ Adapter = (*RemoteAdapter)(nil)

// NewRemoteAdapter constructs an adapter for the bridge at rawURL.
func NewRemoteAdapter(rawURL string, timeout time.Duration) (*RemoteAdapter, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse wallet bridge url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("wallet bridge url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("wallet bridge url missing host")
	}
	return &RemoteAdapter{
		baseURL: parsed,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Connect opens a wallet session and returns the connected account.
func (r *RemoteAdapter) Connect(ctx context.Context) (Account, error) {
	var account Account
	if err := r.do(ctx, http.MethodPost, "/v1/connect", nil, &account); err != nil {
		return Account{}, err
	}
	return account, nil
}

// IsConnected reports whether the bridge holds an open wallet session.
func (r *RemoteAdapter) IsConnected(ctx context.Context) (bool, error) {
	var status struct {
		Connected bool `json:"connected"`
	}
	if err := r.do(ctx, http.MethodGet, "/v1/status", nil, &status); err != nil {
		return false, err
	}
	return status.Connected, nil
}

// Account returns the connected account.
func (r *RemoteAdapter) Account(ctx context.Context) (Account, error) {
	var account Account
	if err := r.do(ctx, http.MethodGet, "/v1/account", nil, &account); err != nil {
		return Account{}, err
	}
	if account.Address == "" {
		return Account{}, ErrNotConnected
	}
	return account, nil
}

// SignAndSubmitTransaction asks the member to sign payload and submits it to the ledger.
func (r *RemoteAdapter) SignAndSubmitTransaction(ctx context.Context, payload Payload) (SubmitResult, error) {
	var res SubmitResult
	if err := r.do(ctx, http.MethodPost, "/v1/sign-and-submit", payload, &res); err != nil {
		return SubmitResult{}, err
	}
	return res, nil
}

// Disconnect closes the wallet session.
func (r *RemoteAdapter) Disconnect(ctx context.Context) error {
	return r.do(ctx, http.MethodPost, "/v1/disconnect", nil, nil)
}

type bridgeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r *RemoteAdapter) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode wallet request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	endpoint := r.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build wallet request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("wallet bridge %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeBridgeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode wallet response: %w", err)
	}
	return nil
}

func decodeBridgeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var be bridgeError
	_ = json.Unmarshal(raw, &be)
	if be.Message == "" {
		be.Message = strings.TrimSpace(string(raw))
	}

	switch {
	case be.Code == codeUserRejected:
		return fmt.Errorf("%w: %s", ErrUserRejected, be.Message)
	case be.Code == codeUnauthorized, resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrNotConnected, be.Message)
	default:
		return fmt.Errorf("wallet bridge status %d: %s", resp.StatusCode, be.Message)
	}
}
