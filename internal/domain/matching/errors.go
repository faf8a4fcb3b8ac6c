package matching

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel every normalizer error unwraps to. Callers
// branch on it with errors.Is and recover field detail with errors.As on the
// concrete types below.
var ErrValidation = errors.New("invalid search input")

// InvalidRangeError reports a numeric range constraint violation in the raw
// search input.
type InvalidRangeError struct {
	Field  string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range for %q: %s", e.Field, e.Reason)
}

func (e *InvalidRangeError) Unwrap() error { return ErrValidation }

// InvalidEnumError reports an unknown enum value, naming the offending field
// and the allowed set.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid value %q for %q, allowed: %s", e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

func (e *InvalidEnumError) Unwrap() error { return ErrValidation }

// InternalComputationError indicates a scoring-weight or candidate-record
// invariant violation. It is never produced by valid input and must propagate
// rather than be clamped away.
type InternalComputationError struct {
	Reason string
	Err    error
}

func (e *InternalComputationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("matching internal error: %s: %v", e.Reason, e.Err)
	}
	return "matching internal error: " + e.Reason
}

func (e *InternalComputationError) Unwrap() error { return e.Err }
