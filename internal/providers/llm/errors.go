package llm

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// KindTransport covers failures before a response arrived: connection
	// refused, DNS, timeouts, request construction.
	KindTransport ErrorKind = "transport"
	// KindRemote covers failures reported by the service itself: non-200
	// statuses, undecodable or empty payloads.
	KindRemote ErrorKind = "remote"
)

// ProviderError is the typed failure of a chat call, so callers can tell a
// broken connection from a model-side rejection instead of matching strings.
type ProviderError struct {
	Kind   ErrorKind
	Status int // HTTP status for KindRemote, 0 otherwise
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error (http %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func newTransportErr(err error) *ProviderError {
	return &ProviderError{Kind: KindTransport, Err: err}
}

func newRemoteErr(status int, err error) *ProviderError {
	return &ProviderError{Kind: KindRemote, Status: status, Err: err}
}

// KindOf reports the error kind, defaulting to transport for untyped errors.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransport
}
