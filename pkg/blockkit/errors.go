package blockkit

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("blockkit: validation failed")

// ErrLogic is matched by every *LogicError.
var ErrLogic = errors.New("blockkit: invalid structure")

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("blockkit: malformed template")

// Constraint names the kind of bound a ValidationError reports.
type Constraint string

// Constraint kinds.
const (
	ConstraintMinLength Constraint = "min_length"
	ConstraintMaxLength Constraint = "max_length"
	ConstraintReference Constraint = "reference"
)

// ValidationError reports a field value that violates a static constraint.
// Length violations carry the bound in Limit; reference violations carry the
// unknown key in Value.
type ValidationError struct {
	Field      string
	Constraint Constraint
	Limit      int
	Value      string
}

func (e *ValidationError) Error() string {
	switch e.Constraint {
	case ConstraintMinLength:
		return fmt.Sprintf("blockkit: %s must be at least %d characters", e.Field, e.Limit)
	case ConstraintMaxLength:
		return fmt.Sprintf("blockkit: %s must be at most %d characters", e.Field, e.Limit)
	case ConstraintReference:
		return fmt.Sprintf("blockkit: %s %q does not exist", e.Field, e.Value)
	default:
		return fmt.Sprintf("blockkit: invalid %s", e.Field)
	}
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// LogicError reports a structural precondition that is unmet when an object
// is rendered: an empty required collection, a missing required sub-object or
// a collection over its limit. Limit is zero when no bound applies.
type LogicError struct {
	Subject string
	Limit   int
	Msg     string
}

func (e *LogicError) Error() string {
	return "blockkit: " + e.Msg
}

// Is reports whether target is ErrLogic.
func (e *LogicError) Is(target error) bool { return target == ErrLogic }

// ParseError wraps a failure to decode an external JSON template.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "blockkit: parsing template: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func tooLong(field string, limit int) *ValidationError {
	return &ValidationError{Field: field, Constraint: ConstraintMaxLength, Limit: limit}
}

func tooShort(field string, limit int) *ValidationError {
	return &ValidationError{Field: field, Constraint: ConstraintMinLength, Limit: limit}
}

func overLimit(subject string, limit int, msg string) *LogicError {
	return &LogicError{Subject: subject, Limit: limit, Msg: msg}
}

func missing(subject, msg string) *LogicError {
	return &LogicError{Subject: subject, Msg: msg}
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
