package provider

import (
    "context"
    "errors"
    "fmt"

    "assettracker/internal/market"
)

// Provider fetches current USD quotes for a batch of watched assets.
//
// Fetch performs one outbound call per invocation and returns exactly one
// quote per requested asset, in request order: assets the upstream priced
// with a finite non-negative value come back StatusOk, the rest come back
// StatusUnavailable. Fetch never fails per-asset; a non-nil error means the
// whole batch produced no usable data (see Error).
type Provider interface {
    Name() string
    Fetch(ctx context.Context, assets []market.Asset) ([]market.Quote, error)
}

// Error reports total failure of one provider's batch for one refresh:
// network failure, timeout, malformed or empty payload, auth or quota
// rejection. It scopes the failure to a single provider so the caller can
// contain it without aborting the other provider's batch.
type Error struct {
    Provider string
    Err      error
}

func (e *Error) Error() string { return fmt.Sprintf("provider %s: %v", e.Provider, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err as a batch-scoped provider failure.
func NewError(name string, err error) *Error {
    return &Error{Provider: name, Err: err}
}

// IsProviderError reports whether err is (or wraps) a batch-scoped
// provider failure.
func IsProviderError(err error) bool {
    var pe *Error
    return errors.As(err, &pe)
}
