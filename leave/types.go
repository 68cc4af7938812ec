// Package leave implements the leave-accounting core: employees, leave
// requests, the approval-workflow state machine, and balance computation
// over a single snapshot of records.
package leave

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// LEAVE TYPE - Closed enumeration
// =============================================================================

// Type is a leave category. The set is closed; values outside it are
// rejected at parse boundaries, never stored.
type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypePersonal  Type = "personal"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeEmergency Type = "emergency"
)

// Types returns all leave types in canonical order.
func Types() []Type {
	return []Type{TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity, TypeEmergency}
}

// ParseType converts a wire string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLeaveType, s)
	}
	return t, nil
}

func (t Type) Valid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity, TypeEmergency:
		return true
	}
	return false
}

// Title returns the display form, e.g. "annual" -> "Annual".
func (t Type) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// =============================================================================
// REQUEST STATUS - Closed enumeration with terminal states
// =============================================================================

// Status is a request lifecycle state. Pending is the only initial and
// only non-terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// Title returns the display form, e.g. "pending" -> "Pending".
func (s Status) Title() string {
	str := string(s)
	if str == "" {
		return str
	}
	return strings.ToUpper(str[:1]) + str[1:]
}

// =============================================================================
// RECORDS - Employee and LeaveRequest
// =============================================================================

// Employee is a directory record. Employees are created at data-load time
// and never deleted; departures flip Active to false.
type Employee struct {
	ID           string       `json:"employee_id" validate:"required"`
	Name         string       `json:"name" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
	Department   string       `json:"department" validate:"required"`
	Position     string       `json:"position,omitempty"`
	ManagerID    string       `json:"manager_id,omitempty"`
	HireDate     Date         `json:"hire_date"`
	Entitlements map[Type]int `json:"leave_entitlements" validate:"omitempty,dive,gte=0"`
	Active       bool         `json:"active"`
}

// Entitlement returns the configured days for a leave type, 0 when the
// type is absent from the map.
func (e *Employee) Entitlement(t Type) int {
	return e.Entitlements[t]
}

// Request is a leave request record. Requests are never physically
// deleted; cancellation is a status.
type Request struct {
	ID            string     `json:"request_id" validate:"required"`
	EmployeeID    string     `json:"employee_id" validate:"required"`
	Type          Type       `json:"leave_type" validate:"required,oneof=annual sick personal maternity paternity emergency"`
	StartDate     Date       `json:"start_date"`
	EndDate       Date       `json:"end_date"`
	DaysRequested int        `json:"days_requested" validate:"min=1"`
	Reason        string     `json:"reason"`
	Status        Status     `json:"status" validate:"required,oneof=pending approved rejected cancelled"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	Comments      string     `json:"comments,omitempty"`
}

// =============================================================================
// STATE - The owned snapshot threaded through operations
// =============================================================================

// State owns the two record collections. It preserves insertion order for
// round-trip fidelity and keeps identifier indexes for lookups. All
// mutation flows through its methods; persistence is the store's job.
type State struct {
	employees []*Employee
	requests  []*Request

	employeeByID map[string]*Employee
	requestByID  map[string]*Request
}

// NewState builds a State and checks the cross-record invariants:
// unique identifiers, resolvable employee references, closed enum values,
// ordered dates, and day counts within the calendar span.
func NewState(employees []*Employee, requests []*Request) (*State, error) {
	st := &State{
		employees:    make([]*Employee, 0, len(employees)),
		requests:     make([]*Request, 0, len(requests)),
		employeeByID: make(map[string]*Employee, len(employees)),
		requestByID:  make(map[string]*Request, len(requests)),
	}

	for _, emp := range employees {
		if emp == nil || emp.ID == "" {
			return nil, fmt.Errorf("employee record without an id")
		}
		if _, dup := st.employeeByID[emp.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id %s", emp.ID)
		}
		for t := range emp.Entitlements {
			if !t.Valid() {
				return nil, fmt.Errorf("employee %s: %w: %q", emp.ID, ErrUnknownLeaveType, string(t))
			}
		}
		st.employees = append(st.employees, emp)
		st.employeeByID[emp.ID] = emp
	}

	for _, req := range requests {
		if req == nil || req.ID == "" {
			return nil, fmt.Errorf("leave request record without an id")
		}
		if err := st.checkRequest(req); err != nil {
			return nil, err
		}
		st.requests = append(st.requests, req)
		st.requestByID[req.ID] = req
	}

	return st, nil
}

func (st *State) checkRequest(req *Request) error {
	if _, dup := st.requestByID[req.ID]; dup {
		return fmt.Errorf("duplicate request id %s", req.ID)
	}
	if _, ok := st.employeeByID[req.EmployeeID]; !ok {
		return fmt.Errorf("request %s references unknown employee %s", req.ID, req.EmployeeID)
	}
	if !req.Type.Valid() {
		return fmt.Errorf("request %s: %w: %q", req.ID, ErrUnknownLeaveType, string(req.Type))
	}
	if !req.Status.Valid() {
		return fmt.Errorf("request %s: %w: %q", req.ID, ErrUnknownStatus, string(req.Status))
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("request %s: missing start or end date", req.ID)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("request %s: end %s before start %s", req.ID, req.EndDate, req.StartDate)
	}
	if req.DaysRequested < 1 {
		return fmt.Errorf("request %s: days_requested %d below 1", req.ID, req.DaysRequested)
	}
	if span := SpanDays(req.StartDate, req.EndDate); req.DaysRequested > span {
		return fmt.Errorf("request %s: days_requested %d exceeds %d-day span", req.ID, req.DaysRequested, span)
	}
	return nil
}

// Employee resolves an employee id.
func (st *State) Employee(id string) (*Employee, error) {
	emp, ok := st.employeeByID[id]
	if !ok {
		return nil, &NotFoundError{Entity: "employee", ID: id}
	}
	return emp, nil
}

// Request resolves a request id.
func (st *State) Request(id string) (*Request, error) {
	req, ok := st.requestByID[id]
	if !ok {
		return nil, &NotFoundError{Entity: "request", ID: id}
	}
	return req, nil
}

// Employees returns the employee collection in insertion order.
func (st *State) Employees() []*Employee {
	out := make([]*Employee, len(st.employees))
	copy(out, st.employees)
	return out
}

// Requests returns the request collection in insertion order.
func (st *State) Requests() []*Request {
	out := make([]*Request, len(st.requests))
	copy(out, st.requests)
	return out
}

// RequestsFor returns one employee's requests in insertion order.
func (st *State) RequestsFor(employeeID string) []*Request {
	var out []*Request
	for _, req := range st.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out
}

// AddRequest appends a new request after checking the record invariants.
func (st *State) AddRequest(req *Request) error {
	if req == nil || req.ID == "" {
		return fmt.Errorf("leave request record without an id")
	}
	if err := st.checkRequest(req); err != nil {
		return err
	}
	st.requests = append(st.requests, req)
	st.requestByID[req.ID] = req
	return nil
}
