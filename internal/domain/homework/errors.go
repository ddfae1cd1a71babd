// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Kind classifies a failure inside a polling cycle.
type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindUpstreamStatus
	KindDecode
	KindShape
	KindMissingField
	KindUnknownStatus
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUpstreamStatus:
		return "upstream_status"
	case KindDecode:
		return "decode"
	case KindShape:
		return "shape"
	case KindMissingField:
		return "missing_field"
	case KindUnknownStatus:
		return "unknown_status"
	default:
		return "unknown"
	}
}

// Error is returned by every step of a cycle. Only the fields relevant to Kind are set.
type Error struct {
	Kind       Kind
	Detail     string
	Field      string // KindMissingField
	Status     string // KindUnknownStatus
	StatusCode int    // KindUpstreamStatus
	Err        error

	sentinel bool
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("homework API request failed: %v", e.Err)
	case KindUpstreamStatus:
		return fmt.Sprintf("homework API returned status %d", e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("homework API response is not valid JSON: %v", e.Err)
	case KindMissingField:
		return fmt.Sprintf("%s key absent", e.Field)
	case KindUnknownStatus:
		return fmt.Sprintf("unknown homework status: %q", e.Status)
	default:
		return e.Detail
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels below, so callers may write errors.Is(err, homework.ErrShape).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || !t.sentinel {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrTransport      = &Error{Kind: KindTransport, Detail: "transport failure", sentinel: true}
	ErrUpstreamStatus = &Error{Kind: KindUpstreamStatus, Detail: "unexpected upstream status", sentinel: true}
	ErrDecode         = &Error{Kind: KindDecode, Detail: "undecodable payload", sentinel: true}
	ErrShape          = &Error{Kind: KindShape, Detail: "unexpected payload shape", sentinel: true}
	ErrMissingField   = &Error{Kind: KindMissingField, Field: "required", sentinel: true}
	ErrUnknownStatus  = &Error{Kind: KindUnknownStatus, Detail: "unknown status", sentinel: true}
)

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return KindUnknown
}

func NewTransportError(cause error) *Error {
	return &Error{Kind: KindTransport, Err: cause}
}

func NewUpstreamStatusError(code int) *Error {
	return &Error{Kind: KindUpstreamStatus, StatusCode: code}
}

func NewDecodeError(cause error) *Error {
	return &Error{Kind: KindDecode, Err: cause}
}

func NewShapeError(detail string) *Error {
	return &Error{Kind: KindShape, Detail: detail}
}

func NewMissingFieldError(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func NewUnknownStatusError(status string) *Error {
	return &Error{Kind: KindUnknownStatus, Status: status}
}
