package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as unwrap targets for errors.Is checks.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrStatusNotAllowed   = errors.New("status not allowed for operation")
	ErrResourceNotDeleted = errors.New("resource was not deleted")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
)

// sanitize removes newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause (e.g. a storage error).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("object not found: %s", sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure details.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending
// value and its bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping the cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %v, max value is %v",
		sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// StatusNotAllowedError indicates an attempted lifecycle transition from a
// state that does not permit the operation. It carries the operation name and
// the current status so API clients can render a precise diagnostic.
type StatusNotAllowedError struct {
	Operation string
	Status    string
}

// NewStatusNotAllowedError creates a StatusNotAllowedError for the given
// operation and current status.
func NewStatusNotAllowedError(operation, status string) *StatusNotAllowedError {
	return &StatusNotAllowedError{Operation: operation, Status: status}
}

func (e *StatusNotAllowedError) Error() string {
	return fmt.Sprintf("operation %s is not allowed for status %s", e.Operation, e.Status)
}

func (e *StatusNotAllowedError) Unwrap() error {
	return ErrStatusNotAllowed
}

// ResourceDeletedError indicates that a delete operation did not remove the
// targeted resource.
type ResourceDeletedError struct {
	ParamName string
	ID        any
}

// NewResourceDeletedError creates a ResourceDeletedError for the given
// resource name and identifier.
func NewResourceDeletedError(paramName string, id any) *ResourceDeletedError {
	return &ResourceDeletedError{ParamName: paramName, ID: id}
}

func (e *ResourceDeletedError) Error() string {
	return fmt.Sprintf("resource was not deleted: param is: %s, ID is: %s", e.ParamName, sanitize(e.ID))
}

func (e *ResourceDeletedError) Unwrap() error {
	return ErrResourceNotDeleted
}

// UnauthorizedAccessError indicates that the permission evaluator denied an
// operation for the acting user.
type UnauthorizedAccessError struct {
	Operation string
}

// NewUnauthorizedAccessError creates an UnauthorizedAccessError for the given
// operation name.
func NewUnauthorizedAccessError(operation string) *UnauthorizedAccessError {
	return &UnauthorizedAccessError{Operation: operation}
}

func (e *UnauthorizedAccessError) Error() string {
	return fmt.Sprintf("unauthorized access: %s", e.Operation)
}

func (e *UnauthorizedAccessError) Unwrap() error {
	return ErrUnauthorizedAccess
}
