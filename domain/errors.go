package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrTableConfig  = errors.New("invalid rate table")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindTableConfig  ErrorKind = "table_config"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Field string // Optional: offending input field or table name
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrTableConfig:
		return e.Kind == KindTableConfig
	}
	return false
}

// IsKind helps callers classify errors without depending on the packages that produced them.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidInput builds a KindInvalidInput error for the given operation and field.
func InvalidInput(op, field, format string, args ...any) error {
	return &OpError{
		Op:    op,
		Kind:  KindInvalidInput,
		Field: field,
		Err:   fmt.Errorf(format, args...),
	}
}

// TableConfig builds a KindTableConfig error for the given operation and table.
func TableConfig(op, table, format string, args ...any) error {
	return &OpError{
		Op:    op,
		Kind:  KindTableConfig,
		Field: table,
		Err:   fmt.Errorf(format, args...),
	}
}
