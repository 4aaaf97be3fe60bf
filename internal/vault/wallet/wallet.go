// Package wallet is the boundary to the member's signing wallet.
package wallet

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
)

var (
	// ErrNotConnected is returned when no wallet session is established.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrUserRejected is returned when the member declines to sign.
	ErrUserRejected = errors.New("user rejected the request")
)

// Account identifies the connected wallet account.
type Account struct {
	Address   model.Address `json:"address"`
	PublicKey string        `json:"publicKey"`
}

// Payload is an entry function invocation handed to the wallet for signing.
type Payload struct {
	Type          string   `json:"type"`
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// SubmitResult carries the hash of a signed and submitted transaction.
type SubmitResult struct {
	Hash string `json:"hash"`
}

// Adapter is the wallet contract consumed by the vault services.
type Adapter interface {
	Connect(ctx context.Context) (Account, error)
	IsConnected(ctx context.Context) (bool, error)
	Account(ctx context.Context) (Account, error)
	SignAndSubmitTransaction(ctx context.Context, payload Payload) (SubmitResult, error)
	Disconnect(ctx context.Context) error
}
