package api

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup yields no matching record.
var ErrNotFound = errors.New("not found")

// TransportError covers network failures and non-2xx responses from the
// resource store.
type TransportError struct {
	Op     string
	Status int // 0 when the request never got a response
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s: status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
