package sorm

import (
	"errors"
	"fmt"
)

// Error kinds returned by every fallible operation in this package.
// Use errors.Is() to tell them apart.
var (
	// ErrStorage wraps any failure surfaced by the execution service:
	// connectivity, a rejected query, or a result that does not decode.
	ErrStorage = errors.New("storage error")

	// ErrPreconditionFailed is returned before any database call when an
	// operation needs an identity the entity does not carry, or when a
	// consumed query builder is used again.
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Causes carried by ErrPreconditionFailed.
const (
	causeMissingID       = "missing identifier"
	causeSourceMissingID = "source identifier missing"
	causeTargetMissingID = "target identifier missing"
	causeConsumed        = "query builder already consumed"
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func preconditionFailed(cause string) error {
	return fmt.Errorf("%w: %s", ErrPreconditionFailed, cause)
}
