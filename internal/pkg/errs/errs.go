package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for error classification with errors.Is.
// Each concrete error type unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrTokenExpired      = errors.New("token is expired")
	ErrForbidden         = errors.New("operation is forbidden")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
)

// sanitize strips newline characters from values interpolated into error
// messages so a single log line stays a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError reports that an entity could not be located by its
// identifier. ParamName names the lookup parameter, ID carries the value.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the error
// that triggered the lookup failure.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateError reports a rejected state mutation: an illegal status
// transition, a reused delivery token, or an operation attempted against an
// entity whose lifecycle no longer permits it.
type InvalidStateError struct {
	ParamName string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(paramName string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping the
// detail of the rejected mutation.
func NewInvalidStateErrorWithCause(paramName string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.ParamName)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// TokenExpiredError reports a delivery token validated past its expiry window.
type TokenExpiredError struct {
	ParamName string
	Cause     error
}

// NewTokenExpiredError creates a TokenExpiredError without an underlying cause.
func NewTokenExpiredError(paramName string) *TokenExpiredError {
	return &TokenExpiredError{ParamName: paramName}
}

// NewTokenExpiredErrorWithCause creates a TokenExpiredError wrapping the expiry detail.
func NewTokenExpiredErrorWithCause(paramName string, cause error) *TokenExpiredError {
	return &TokenExpiredError{ParamName: paramName, Cause: cause}
}

func (e *TokenExpiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTokenExpired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTokenExpired, e.ParamName)
}

func (e *TokenExpiredError) Unwrap() error {
	return ErrTokenExpired
}

// ForbiddenError reports an actor/ownership mismatch, e.g. a courier reporting
// a location for a parcel assigned to someone else.
type ForbiddenError struct {
	ParamName string
	Cause     error
}

// NewForbiddenError creates a ForbiddenError without an underlying cause.
func NewForbiddenError(paramName string) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping the mismatch detail.
func NewForbiddenErrorWithCause(paramName string, cause error) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.ParamName)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ValueIsInvalidError reports a malformed value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation detail.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the validation detail.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// validation detail.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
