package service

import (
	"errors"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/wallet"
)

var (
	ErrInsufficientBalance = errors.New("withdrawal exceeds vault balance")
	ErrNotMember           = errors.New("actor is not a vault member")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidPurpose      = errors.New("purpose is required")
	ErrInvalidVault        = errors.New("invalid vault definition")
	ErrNotDeployer         = errors.New("only the module deployer can initialize the registry")
	ErrWalletNotConnected  = wallet.ErrNotConnected
)
