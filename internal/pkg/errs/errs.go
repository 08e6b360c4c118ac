package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors used as the stable classification targets for errors.Is.
// Every concrete error type in this package unwraps to exactly one of them.
var (
	// ErrValueIsRequired indicates a required value was missing or empty.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a value was present but failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound indicates a lookup by identifier found nothing.
	ErrObjectNotFound = errors.New("object not found")

	// ErrNotAuthorized indicates the caller is not the permitted actor
	// for the attempted operation.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrStateConflict indicates a state transition was attempted from a
	// status that does not allow it, or a concurrent writer won the race.
	ErrStateConflict = errors.New("state conflict")

	// ErrEventDateLocked indicates a kitchen-advancing transition was
	// blocked because the order's event date has not arrived yet.
	ErrEventDateLocked = errors.New("event date is locked")
)

// sanitize removes newlines from values interpolated into error messages
// so a single log line always carries the whole message.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports that no object exists for the given identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// NotAuthorizedError reports that the caller may not perform the operation.
type NotAuthorizedError struct {
	Actor     string
	Operation string
	Cause     error
}

// NewNotAuthorizedError creates a NotAuthorizedError for the given actor and operation.
func NewNotAuthorizedError(actor, operation string) *NotAuthorizedError {
	return &NotAuthorizedError{Actor: actor, Operation: operation}
}

// NewNotAuthorizedErrorWithCause creates a NotAuthorizedError wrapping a cause.
func NewNotAuthorizedErrorWithCause(actor, operation string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Actor: actor, Operation: operation, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s may not %s (cause: %s)",
			ErrNotAuthorized, sanitize(e.Actor), e.Operation, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s may not %s", ErrNotAuthorized, sanitize(e.Actor), e.Operation)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// StateConflictError reports an invalid transition: the operation named
// which state it wanted to move from, and the entity was in another.
// It is also returned when a conditional write loses a concurrent race.
type StateConflictError struct {
	Attempted string
	Actual    string
	Cause     error
}

// NewStateConflictError creates a StateConflictError naming the attempted and actual states.
func NewStateConflictError(attempted, actual string) *StateConflictError {
	return &StateConflictError{Attempted: attempted, Actual: actual}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping a cause.
func NewStateConflictErrorWithCause(attempted, actual string, cause error) *StateConflictError {
	return &StateConflictError{Attempted: attempted, Actual: actual, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: attempted %s, actual %s (cause: %s)",
			ErrStateConflict, sanitize(e.Attempted), sanitize(e.Actual), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: attempted %s, actual %s",
		ErrStateConflict, sanitize(e.Attempted), sanitize(e.Actual))
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// EventDateLockedError reports that a kitchen-advancing transition is blocked
// until the order's event date. Its message format is relied upon by clients
// and must stay stable.
type EventDateLockedError struct {
	EventDate     time.Time
	DaysRemaining int
}

// NewEventDateLockedError creates an EventDateLockedError for the given event
// date and the number of whole days until it.
func NewEventDateLockedError(eventDate time.Time, daysRemaining int) *EventDateLockedError {
	return &EventDateLockedError{EventDate: eventDate, DaysRemaining: daysRemaining}
}

func (e *EventDateLockedError) Error() string {
	return fmt.Sprintf(
		"Event is in %d day(s). Status changes to preparing/completed are locked until %s.",
		e.DaysRemaining, e.EventDate.Format("January 2, 2006"))
}

func (e *EventDateLockedError) Unwrap() error {
	return ErrEventDateLocked
}
