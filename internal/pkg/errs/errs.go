package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors. Every typed error in this package unwraps to exactly one of them,
// so callers classify failures with errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrDataIntegrityFault  = errors.New("data integrity fault")
)

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the closed interval [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConstraintViolationError reports a write rejected by a storage constraint,
// such as a duplicate email on the clients table.
type ConstraintViolationError struct {
	Entity string
	Cause  error
}

func NewConstraintViolationError(entity string, cause error) *ConstraintViolationError {
	return &ConstraintViolationError{
		Entity: entity,
		Cause:  cause,
	}
}

func (e *ConstraintViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConstraintViolation, e.Entity, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Entity)
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}

// ResourceUnavailableError reports a shared resource that could not be acquired
// within Timeout.
type ResourceUnavailableError struct {
	Resource string
	Timeout  time.Duration
	Cause    error
}

func NewResourceUnavailableError(resource string, timeout time.Duration) *ResourceUnavailableError {
	return &ResourceUnavailableError{
		Resource: resource,
		Timeout:  timeout,
	}
}

func NewResourceUnavailableErrorWithCause(
	resource string,
	timeout time.Duration,
	cause error,
) *ResourceUnavailableError {
	return &ResourceUnavailableError{
		Resource: resource,
		Timeout:  timeout,
		Cause:    cause,
	}
}

func (e *ResourceUnavailableError) Error() string {
	msg := fmt.Sprintf("%s: %s not acquired within %s", ErrResourceUnavailable, e.Resource, e.Timeout)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// DataIntegrityFaultError reports persisted state that breaks a domain invariant,
// e.g. a package referencing a compartment that does not exist.
type DataIntegrityFaultError struct {
	Entity string
	ID     any
	Reason string
	Cause  error
}

func NewDataIntegrityFaultError(entity string, id any, reason string) *DataIntegrityFaultError {
	return &DataIntegrityFaultError{
		Entity: entity,
		ID:     id,
		Reason: reason,
	}
}

func NewDataIntegrityFaultErrorWithCause(entity string, id any, reason string, cause error) *DataIntegrityFaultError {
	return &DataIntegrityFaultError{
		Entity: entity,
		ID:     id,
		Reason: reason,
		Cause:  cause,
	}
}

func (e *DataIntegrityFaultError) Error() string {
	msg := fmt.Sprintf("%s: %s %s: %s", ErrDataIntegrityFault, e.Entity, sanitize(e.ID), e.Reason)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DataIntegrityFaultError) Unwrap() error {
	return ErrDataIntegrityFault
}

// sanitize keeps caller-supplied values on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
