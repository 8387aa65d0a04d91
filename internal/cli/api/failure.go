package api

import (
	"errors"
	"fmt"
)

// FailureKind classifies what went wrong with a vault request. Callers key
// all user-facing messaging off this value, so kinds are never conflated.
type FailureKind int

const (
	// FailureAuthMissing means no usable token: either none is stored or
	// the server rejected the one we sent. The caller must route the user
	// to login instead of retrying.
	FailureAuthMissing FailureKind = iota
	// FailureValidation means the server answered 4xx with a body
	// explaining why; the body is shown to the user verbatim.
	FailureValidation
	// FailureNetwork means no response reached the client at all.
	FailureNetwork
	// FailureUnknown covers everything else (5xx, malformed body, ...).
	FailureUnknown
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuthMissing:
		return "auth missing"
	case FailureValidation:
		return "validation"
	case FailureNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Failure is the typed error returned by every Client operation.
type Failure struct {
	Kind    FailureKind
	Message string // server-provided text for validation failures
	Err     error  // underlying transport error, if any
}

func (f *Failure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Err != nil {
		return fmt.Sprintf("%s error: %v", f.Kind, f.Err)
	}
	return f.Kind.String() + " error"
}

func (f *Failure) Unwrap() error { return f.Err }

// AsFailure extracts a *Failure from err, wrapping foreign errors as
// FailureUnknown so callers always have a kind to switch on.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: FailureUnknown, Err: err}
}
