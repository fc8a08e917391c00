package rawaddr

import (
	"errors"
	"fmt"
)

// ErrAddressNotFound is returned when the service answers with a non-OK
// status: either the address is unknown/malformed or the API is unavailable.
var ErrAddressNotFound = errors.New("bitcoin address not found or API is not responding")

// NetworkError wraps connectivity and timeout failures of the HTTP call.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError wraps failures to decode the response body into the expected
// shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected response shape: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
