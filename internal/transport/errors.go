package transport

import (
	"context"
	"errors"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"

	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/ledger"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/service"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
)

var errBadRequest = errors.New("bad request")

// codeFor maps a domain error onto a gRPC code. Order matters: the specific
// ledger rejections wrap ErrSubmissionRejected.
func codeFor(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, errBadRequest),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidPurpose),
		errors.Is(err, service.ErrInvalidVault):
		return codes.InvalidArgument
	case errors.Is(err, store.ErrVaultNotFound), errors.Is(err, store.ErrRequestNotFound):
		return codes.NotFound
	case errors.Is(err, service.ErrNotMember), errors.Is(err, service.ErrNotDeployer):
		return codes.PermissionDenied
	case errors.Is(err, service.ErrWalletNotConnected):
		return codes.Unauthenticated
	case errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrRegistryNotInitialized):
		return codes.FailedPrecondition
	case errors.Is(err, ledger.ErrAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, ledger.ErrSignerDeclined), errors.Is(err, ledger.ErrSubmissionRejected):
		return codes.Aborted
	case errors.Is(err, ledger.ErrConfirmationTimeout), errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, ledger.ErrLedgerUnavailable):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

func httpStatusFor(err error) int {
	return gwruntime.HTTPStatusFromCode(codeFor(err))
}

func isServerError(status int) bool {
	return status >= http.StatusInternalServerError
}
