package runner

import (
	"fmt"

	libnet "respfuzz/pkg/net"
)

// TransportError is a failure of the connection itself: dial, write or
// read. The stream is unusable afterwards.
type TransportError struct {
	Op      string
	Addr    string
	Err     error
	Timeout bool
}

func newTransportError(op, addr string, err error) *TransportError {
	return &TransportError{Op: op, Addr: addr, Err: err, Timeout: libnet.IsTimeout(err)}
}

func (e *TransportError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

// Cause returns the underlying error for errors.Cause.
func (e *TransportError) Cause() error {
	return e.Err
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *TransportError) Unwrap() error {
	return e.Err
}
