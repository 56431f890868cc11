package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDialogNotFound   = fmt.Errorf("dialog not found")
	ErrProfileNotFound  = fmt.Errorf("profile not found")
	ErrAlreadyClosed    = fmt.Errorf("dialog already closed")
	ErrUnauthenticated  = fmt.Errorf("unauthenticated")
	ErrUnauthorized     = fmt.Errorf("unauthorized")
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
	ErrInvalidPayload   = fmt.Errorf("invalid payload")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
)

// Code is the stable, transport-facing name of an error family.
type Code string

const (
	CodeNotFound         Code = "not_found"
	CodeAlreadyClosed    Code = "already_closed"
	CodeUnauthenticated  Code = "unauthenticated"
	CodeUnauthorized     Code = "unauthorized"
	CodeStoreUnavailable Code = "store_unavailable"
	CodeInvalidPayload   Code = "invalid_payload"
	CodeInternal         Code = "internal"
)

// ToCode maps a (possibly wrapped) error to its Code.
func ToCode(err error) Code {
	switch {
	case errors.Is(err, ErrDialogNotFound), errors.Is(err, ErrProfileNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyClosed):
		return CodeAlreadyClosed
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	case errors.Is(err, ErrInvalidPayload):
		return CodeInvalidPayload
	default:
		return CodeInternal
	}
}

// IsNotFound reports whether err is one of the NotFound sentinels.
func IsNotFound(err error) bool {
	return ToCode(err) == CodeNotFound
}
