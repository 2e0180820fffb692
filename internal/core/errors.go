package core

import (
	"context"
	"errors"
	"fmt"

	"txledger/internal/ethereum"
)

// Error kinds. Every wallet or chain failure returned by this package is an
// *Error whose Kind is one of these.
var (
	ErrWalletUnavailable = errors.New("wallet unavailable")
	ErrUserRejected      = errors.New("user rejected request")
	ErrCallReverted      = errors.New("call reverted")
	ErrNetworkFailure    = errors.New("network failure")
	ErrTimeout           = errors.New("timed out")
	ErrCanceled          = errors.New("canceled")
)

var (
	ErrNotConnected = errors.New("no account connected")
	ErrInvalidForm  = errors.New("invalid form data")
	ErrUnknownField = errors.New("unknown form field")
)

type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the original cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func walletUnavailable(op string) error {
	return &Error{Op: op, Kind: ErrWalletUnavailable}
}

func classify(op string, err error) error {
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}

	kind := ErrNetworkFailure
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = ErrTimeout
	case errors.Is(err, context.Canceled):
		kind = ErrCanceled
	case errors.Is(err, ethereum.ErrUserRejected), errors.Is(err, ethereum.ErrNoAccount):
		kind = ErrUserRejected
	case errors.Is(err, ethereum.ErrReverted):
		kind = ErrCallReverted
	}

	return &Error{Op: op, Kind: kind, Err: err}
}
