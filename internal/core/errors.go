package core

import (
	"errors"
	"fmt"
)

// ErrNoCredentials indicates the gateway answered successfully but has no
// signing secret registered for the requested consumer.
var ErrNoCredentials = errors.New("no credentials registered for consumer")

// ErrItemNotFound indicates the requested item does not exist in the store.
var ErrItemNotFound = errors.New("item not found")

// UpstreamError indicates the credential gateway was unreachable or answered
// with a non-success status. Status is propagated to the caller.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("credential gateway: %s (status %d)", e.Message, e.Status)
}

// EncodingError indicates the claims payload could not be serialized into a
// token, e.g. because it contains non-serializable values.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return "encoding claims: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
