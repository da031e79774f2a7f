package resp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ProtocolError is a malformed or truncated frame.
type ProtocolError struct {
	// Offset of the offending byte in the decoded buffer.
	Offset int
	Reason string
	// Truncated is set when the buffer ended before the frame did.
	Truncated bool
	// Need is, for a truncated frame, a lower bound of the buffer length
	// the frame requires. Zero when unknown.
	Need int
}

func (e *ProtocolError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("resp: truncated frame at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("resp: %s at offset %d", e.Reason, e.Offset)
}

// IsTruncated reports whether err is a ProtocolError caused by a premature
// end of data.
func IsTruncated(err error) bool {
	pe, ok := errors.Cause(err).(*ProtocolError)
	return ok && pe.Truncated
}

// IsProtocolError reports whether err is a ProtocolError of any kind.
func IsProtocolError(err error) bool {
	_, ok := errors.Cause(err).(*ProtocolError)
	return ok
}

func truncated(off int, reason string) error {
	return &ProtocolError{Offset: off, Reason: reason, Truncated: true}
}

func malformed(off int, format string, args ...interface{}) error {
	return &ProtocolError{Offset: off, Reason: fmt.Sprintf(format, args...)}
}
