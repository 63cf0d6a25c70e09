package menusync

import (
	"errors"
	"fmt"
)

var (
	// ErrMenuNotFound is wrapped by NotFoundError when the source menu is missing.
	ErrMenuNotFound = errors.New("menu not found")
	// ErrTargetNotFound is wrapped by NotFoundError when a target tenant is missing.
	ErrTargetNotFound = errors.New("target tenant not found")
	// ErrSourceNotFound is wrapped by NotFoundError when the source tenant is missing.
	ErrSourceNotFound = errors.New("source tenant not found")
)

const (
	// ReasonMenuExists is the abort reason of the skip strategy.
	ReasonMenuExists = "menu already exists"
	// ReasonInvalidStrategy is the abort reason for unknown strategies.
	ReasonInvalidStrategy = "invalid conflict resolution strategy"
)

// ValidationError reports bad input rejected before any work starts.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing menu or tenant.
type NotFoundError struct {
	ID  int64
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %d", e.Err, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ConflictAbort reports that the conflict strategy refused to touch an existing menu.
type ConflictAbort struct {
	Reason string
}

func (e *ConflictAbort) Error() string { return e.Reason }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
