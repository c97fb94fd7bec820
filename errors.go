package amqpwire

import (
	"fmt"
	"strings"
)

// ErrorKind classifies encoding errors.
type ErrorKind int

const (
	// ErrRange means a value or length exceeds what the wire format can carry.
	ErrRange ErrorKind = iota + 1
	// ErrUnsupportedKind means a value has no encoding rule.
	ErrUnsupportedKind
	// ErrNotImplementedKind marks an operation that exists but is not implemented.
	ErrNotImplementedKind
)

func (k ErrorKind) String() string {
	switch k {
	case ErrRange:
		return "range"
	case ErrUnsupportedKind:
		return "unsupported kind"
	case ErrNotImplementedKind:
		return "not implemented"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error carries the classification and the table path of a failure.
type Error struct {
	Kind   ErrorKind
	Path   []string // field names, outermost first
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Path) > 0 {
		return fmt.Sprintf("amqpwire: %v at %s: %s", e.Kind, strings.Join(e.Path, "."), e.Detail)
	}
	return fmt.Sprintf("amqpwire: %v: %s", e.Kind, e.Detail)
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotImplemented)
// works regardless of detail or path.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && e != nil && t.Kind == e.Kind
}

// ErrNotImplemented is returned by stubbed operations.
var ErrNotImplemented = &Error{Kind: ErrNotImplementedKind, Detail: "not implemented"}

func rangeErrorf(format string, args ...any) error {
	return &Error{Kind: ErrRange, Detail: fmt.Sprintf(format, args...)}
}

func unsupportedf(format string, args ...any) error {
	return &Error{Kind: ErrUnsupportedKind, Detail: fmt.Sprintf(format, args...)}
}

// atField prefixes name to the path of err when err is an *Error.
func atField(name string, err error) error {
	if e, ok := err.(*Error); ok && e != ErrNotImplemented {
		e.Path = append([]string{name}, e.Path...)
	}
	return err
}
