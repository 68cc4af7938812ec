/*
errors.go - Centralized error types for the leave domain

PURPOSE:
  All error kinds in one place for consistency and discoverability.
  Callers branch with the Is* helpers or errors.Is against the sentinels;
  the structured types carry the offending id/value for error messages.

ERROR CATEGORIES:
  1. Lookup errors     - Unknown employee or request identifiers
  2. Validation errors - Bad date ranges, illegal status transitions,
                         inactive employees, unknown enum values
  3. Store errors      - Unreadable or unwritable snapshot documents

USAGE:
  req, err := svc.Cancel(ctx, id)
  if leave.IsInvalidTransition(err) {
      // request already decided or cancelled
  }

SEE ALSO:
  - workflow.go: Raises lookup and transition errors
  - store/jsonfile: Raises corrupt-data and I/O errors
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNotFound is returned when an employee, request, or snapshot
	// identifier does not resolve to a record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRange is returned when a date range cannot be counted:
	// end before start, or no countable days under the exclusion policy.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidTransition is returned for any status change that is not
	// pending -> approved/rejected/cancelled. Terminal statuses are final.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInactiveEmployee is returned when a request is submitted for a
	// deactivated employee.
	ErrInactiveEmployee = errors.New("employee is inactive")

	// ErrCorruptData is returned when the persisted snapshot cannot be
	// parsed into the expected shape.
	ErrCorruptData = errors.New("corrupt snapshot")

	// ErrIO is returned when the snapshot cannot be read or replaced.
	ErrIO = errors.New("snapshot io failure")

	// ErrUnknownLeaveType is returned when a value outside the closed
	// leave-type set reaches a parse boundary.
	ErrUnknownLeaveType = errors.New("unknown leave type")

	// ErrUnknownStatus is returned when a value outside the closed
	// status set reaches a parse boundary.
	ErrUnknownStatus = errors.New("unknown status")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NotFoundError identifies which record was missing.
type NotFoundError struct {
	Entity string // "employee", "request", "snapshot"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidRangeError describes an uncountable date range.
type InvalidRangeError struct {
	Start  Date
	End    Date
	Detail string // empty means "end before start"
}

func (e *InvalidRangeError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = "end before start"
	}
	return fmt.Sprintf("invalid date range %s to %s: %s", e.Start, e.End, detail)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// InvalidTransitionError describes an illegal status change.
type InvalidTransitionError struct {
	RequestID string
	From      Status
	To        Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("request %s: cannot transition from %s to %s", e.RequestID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InactiveEmployeeError identifies the deactivated employee.
type InactiveEmployeeError struct {
	ID string
}

func (e *InactiveEmployeeError) Error() string {
	return fmt.Sprintf("employee %s is inactive", e.ID)
}

func (e *InactiveEmployeeError) Unwrap() error {
	return ErrInactiveEmployee
}

// CorruptDataError carries the parse or shape failure for a snapshot.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt snapshot %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return ErrCorruptData
}

// IOError carries a failed persistence operation.
type IOError struct {
	Op   string // "read", "write", "replace"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return ErrIO
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidRange returns true if the error indicates an uncountable range.
func IsInvalidRange(err error) bool { return errors.Is(err, ErrInvalidRange) }

// IsInvalidTransition returns true if the error indicates an illegal
// status change.
func IsInvalidTransition(err error) bool { return errors.Is(err, ErrInvalidTransition) }

// IsInactiveEmployee returns true if the error indicates a deactivated
// employee.
func IsInactiveEmployee(err error) bool { return errors.Is(err, ErrInactiveEmployee) }

// IsCorruptData returns true if the error indicates an unparseable snapshot.
func IsCorruptData(err error) bool { return errors.Is(err, ErrCorruptData) }

// IsIO returns true if the error indicates a persistence failure.
func IsIO(err error) bool { return errors.Is(err, ErrIO) }
