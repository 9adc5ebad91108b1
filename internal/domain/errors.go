package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals an unknown order, menu item or add-on id.
var ErrNotFound = errors.New("not found")

// ValidationError blocks order construction entirely; Option names the
// offending menu option when one is involved.
type ValidationError struct {
	Option string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("%s: %s", e.Option, e.Reason)
	}
	return e.Reason
}

// InvalidStateError reports a status transition attempted from the wrong
// state. Current lets the operator tell "already completed by someone else"
// apart from "safe to retry".
type InvalidStateError struct {
	Current    OrderStatus
	Transition string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %s", e.Transition, e.Current)
}

// StorageError wraps a persistence failure so callers can distinguish it
// from domain rejections.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }
