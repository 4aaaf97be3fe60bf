package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLedgerUnavailable covers network and read failures against the ledger node.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrSubmissionRejected is returned when the ledger refuses or aborts a transaction.
	ErrSubmissionRejected = errors.New("submission rejected")
	// ErrSignerDeclined is returned when the member declines to sign.
	ErrSignerDeclined = errors.New("signer declined")
	// ErrConfirmationTimeout is returned when a submitted transaction is not committed in time.
	ErrConfirmationTimeout = errors.New("confirmation timeout")

	ErrRegistryNotInitialized = fmt.Errorf("%w: vault registry not initialized, the deployer must initialize it first", ErrSubmissionRejected)
	ErrInsufficientFunds      = fmt.Errorf("%w: insufficient funds", ErrSubmissionRejected)
	ErrAlreadyExists          = fmt.Errorf("%w: resource already exists", ErrSubmissionRejected)
)

// registryMissingAbort is the module abort code raised when the vault registry is absent.
const registryMissingAbort = "0x3e8"

// classify maps a ledger vm status or wallet message onto the error taxonomy.
func classify(status string) error {
	upper := strings.ToUpper(status)
	switch {
	case strings.Contains(status, registryMissingAbort), strings.Contains(upper, "ABORTED") && strings.Contains(status, "1000"):
		return fmt.Errorf("%w (%s)", ErrRegistryNotInitialized, status)
	case strings.Contains(upper, "INSUFFICIENT_BALANCE"):
		return fmt.Errorf("%w (%s)", ErrInsufficientFunds, status)
	case strings.Contains(upper, "RESOURCE_ALREADY_EXISTS"):
		return fmt.Errorf("%w (%s)", ErrAlreadyExists, status)
	default:
		return fmt.Errorf("%w: %s", ErrSubmissionRejected, status)
	}
}
