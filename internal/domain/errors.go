package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the addressed record no longer exists. Repos
	// translate zero-rows-affected into this instead of silently no-opping.
	ErrNotFound = errors.New("record not found")

	// ErrConflict reports an optimistic-lock failure: another admin changed
	// the row since it was read. The whole operation can be retried.
	ErrConflict = errors.New("record changed concurrently, retry the operation")
)

// ValidationError reports bad input detected before any write occurs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports a unique-identifier collision (equipment code,
// client tax id, contract folio).
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %q already exists", e.Field, e.Value)
}

// TransitionError reports an equipment state change the lifecycle rules
// forbid, e.g. opening a contract against a unit that is not available.
type TransitionError struct {
	UnitCode string
	From     EquipmentState
	Reason   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("equipment %s in state %s: %s", e.UnitCode, e.From, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	var te *TransitionError
	return errors.As(err, &ve) || errors.As(err, &te)
}

func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}
