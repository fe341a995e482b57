package resource

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store implementations when a row does not exist.
var ErrNotFound = errors.New("resource not found")

// Kind classifies a request-level failure. The transport layer maps kinds to
// HTTP status codes; the core only decides what went wrong.
type Kind string

const (
	KindMalformedPayload         Kind = "malformed_payload"
	KindTypeMismatch             Kind = "type_mismatch"
	KindIdentityMismatch         Kind = "identity_mismatch"
	KindMissingAttributes        Kind = "missing_attributes"
	KindInvalidTimestamp         Kind = "invalid_timestamp"
	KindInvalidEnumValue         Kind = "invalid_enum_value"
	KindInvalidReference         Kind = "invalid_reference"
	KindDanglingReference        Kind = "dangling_reference"
	KindMissingRequiredReference Kind = "missing_required_reference"
	KindInactiveGameRejection    Kind = "inactive_game"
	KindResourceNotFound         Kind = "resource_not_found"
)

// Error is the single structured error the core surfaces. Attr names the
// offending attribute (wire form) for attribute-level failures; it is empty
// for payload-level ones.
type Error struct {
	Kind    Kind
	Attr    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, attr, format string, args ...any) *Error {
	return &Error{Kind: kind, Attr: attr, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts a structured core error, if err carries one.
func AsError(err error) (*Error, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
