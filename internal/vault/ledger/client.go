// Package ledger is the gateway to the ledger node hosting the multisig vault module.
// It issues read-only view calls and submits signed entry function transactions;
// it holds no business logic and never retries.
package ledger

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

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/sharedvault-backend/internal/clock"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/wallet"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for ledger calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Signer signs and submits entry function payloads on behalf of the member.
	Signer interface {
		SignAndSubmitTransaction(ctx context.Context, payload wallet.Payload) (wallet.SubmitResult, error)
	}
)

const (
	entryFunctionPayload = "entry_function_payload"
	pendingTransaction   = "pending_transaction"
	maxErrorBody         = 4 << 10

	defaultHTTPTimeout         = 10 * time.Second
	defaultConfirmationTimeout = 60 * time.Second
	defaultPollInterval        = time.Second
	defaultViewRPS             = 20
)

// Config describes the ledger node and the vault module.
type Config struct {
	NodeURL             string
	ModuleAddress       model.Address
	ModuleName          string
	HTTPTimeout         time.Duration
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
	ViewRPS             int
}

// Call is an entry function invocation on the vault module.
type Call struct {
	Function  string
	Arguments []any
}

// TxRef references a submitted transaction.
type TxRef struct {
	Hash string
}

// Client is the ledger gateway.
type Client struct {
	http           *http.Client
	nodeURL        *url.URL
	module         string
	metrics        Metrics
	limiter        ratelimit.Limiter
	clock          clock.Clock
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

// NewClient constructs a ledger client.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(cfg.NodeURL)
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("node url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("node url missing host")
	}
	if cfg.ModuleAddress == "" || cfg.ModuleName == "" {
		return nil, errors.New("module address and name are required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = defaultConfirmationTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.ViewRPS <= 0 {
		cfg.ViewRPS = defaultViewRPS
	}

	return &Client{
		http:           &http.Client{Timeout: cfg.HTTPTimeout},
		nodeURL:        parsed,
		module:         fmt.Sprintf("%s::%s", cfg.ModuleAddress, cfg.ModuleName),
		metrics:        metrics,
		limiter:        ratelimit.New(cfg.ViewRPS),
		clock:          clock.New(),
		confirmTimeout: cfg.ConfirmationTimeout,
		pollInterval:   cfg.PollInterval,
	}, nil
}

type viewRequest struct {
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// View runs a read-only module function and returns its raw return values.
func (c *Client) View(ctx context.Context, function string, args ...any) (res []json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(function, err, started)
	}()

	if args == nil {
		args = []any{}
	}
	c.limiter.Take()

	req := viewRequest{
		Function:      c.qualified(function),
		TypeArguments: []string{},
		Arguments:     args,
	}
	if err = c.do(ctx, http.MethodPost, "/v1/view", req, &res); err != nil {
		return nil, fmt.Errorf("view %s: %w", function, err)
	}
	return res, nil
}

// Submit hands the call to signer and returns the submitted transaction reference.
func (c *Client) Submit(ctx context.Context, call Call, signer Signer) (ref TxRef, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(call.Function, err, started)
	}()

	args := call.Arguments
	if args == nil {
		args = []any{}
	}
	res, err := signer.SignAndSubmitTransaction(ctx, wallet.Payload{
		Type:          entryFunctionPayload,
		Function:      c.qualified(call.Function),
		TypeArguments: []string{},
		Arguments:     args,
	})
	switch {
	case errors.Is(err, wallet.ErrUserRejected):
		return TxRef{}, fmt.Errorf("%w: %w", ErrSignerDeclined, err)
	case errors.Is(err, wallet.ErrNotConnected):
		return TxRef{}, err
	case err != nil:
		return TxRef{}, classify(err.Error())
	case res.Hash == "":
		return TxRef{}, fmt.Errorf("%w: wallet returned no transaction hash", ErrSubmissionRejected)
	}
	return TxRef{Hash: res.Hash}, nil
}

type transactionStatus struct {
	Type     string `json:"type"`
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
}

// AwaitConfirmation polls the node until ref is committed or the confirmation timeout elapses.
// The timeout also bounds an in-flight poll.
func (c *Client) AwaitConfirmation(ctx context.Context, ref TxRef) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("await_confirmation", err, started)
	}()

	waitCtx, cancel := c.clock.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	for {
		status, found, err := c.transaction(waitCtx, ref.Hash)
		if waitCtx.Err() != nil {
			return c.waitErr(ctx, ref)
		}
		switch {
		case err != nil:
			return err
		case found && status.Type != pendingTransaction:
			if !status.Success {
				return classify(status.VMStatus)
			}
			return nil
		}

		select {
		case <-waitCtx.Done():
			return c.waitErr(ctx, ref)
		case <-c.clock.After(c.pollInterval):
		}
	}
}

func (c *Client) waitErr(ctx context.Context, ref TxRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: transaction %s after %s", ErrConfirmationTimeout, ref.Hash, c.confirmTimeout)
}

func (c *Client) transaction(ctx context.Context, hash string) (transactionStatus, bool, error) {
	var status transactionStatus
	err := c.do(ctx, http.MethodGet, "/v1/transactions/by_hash/"+url.PathEscape(hash), nil, &status)
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusNotFound {
		return transactionStatus{}, false, nil
	}
	if err != nil {
		return transactionStatus{}, false, fmt.Errorf("get transaction %s: %w", hash, err)
	}
	return status, true, nil
}

func (c *Client) qualified(function string) string {
	return c.module + "::" + function
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.code, e.body)
}

func (e *statusError) Unwrap() error {
	return ErrLedgerUnavailable
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.nodeURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(raw))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrLedgerUnavailable, err)
	}
	return nil
}
