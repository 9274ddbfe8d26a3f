// Package apierror defines the structured error taxonomy shared by the
// gateway, the adapters and the command surface. Errors propagate as tagged
// values so callers can tell a transport failure from a validation failure;
// flattening to a display string happens once, at the outermost presentation
// boundary, via Message.
package apierror

import (
	"errors"
	"fmt"
)

// Kind tags an Error with its failure class.
type Kind string

const (
	// Transport covers connection, DNS and client-side timeout failures.
	Transport Kind = "transport"
	// Service covers non-2xx responses and server-signaled logical
	// rejections (e.g. a null body where a value was promised).
	Service Kind = "service"
	// Decode covers response bodies that do not match the expected schema.
	Decode Kind = "decode"
	// Parse covers UI-supplied strings that cannot be converted to a wire
	// field (malformed decimal, malformed date).
	Parse Kind = "parse"
	// Validation covers email/phone syntax failures and other input gates.
	Validation Kind = "validation"
)

// Error is the canonical error value crossing package boundaries. Op names
// the operation that failed ("gateway.GetProduct"), Detail is a
// human-readable fragment, Err the underlying cause (may be nil).
type Error struct {
	Kind   Kind
	Op     string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error without an underlying cause.
func New(kind Kind, op, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

// Wrap builds an Error around an underlying cause.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the Kind of err, or "" when err carries no taxonomy tag.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message flattens err into the string shown to the user. Operation names
// and wrapped causes stay out of it; they belong in logs, not dialogs.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case Transport:
		return "could not reach the catalog service"
	case Service:
		if e.Detail != "" {
			return e.Detail
		}
		return "the catalog service rejected the request"
	case Decode:
		return "the catalog service returned an unexpected response"
	case Parse:
		if e.Detail != "" {
			return fmt.Sprintf("invalid input: %s", e.Detail)
		}
		return "invalid input"
	case Validation:
		if e.Detail != "" {
			return e.Detail
		}
		return "not a valid input"
	}
	return e.Error()
}
