/*
workflow.go - Request lifecycle service

PURPOSE:
  Implements the approval workflow over the persisted snapshot: submit,
  decide, cancel, and the read views. Every operation is a full
  read-modify-write of the snapshot so unrelated edits are never lost,
  and a failed save leaves the persisted document untouched.

STATE MACHINE:
  pending -> approved   (decide)
  pending -> rejected   (decide)
  pending -> cancelled  (cancel)
  approved/rejected/cancelled are terminal; any transition out of them
  fails with InvalidTransitionError.

CONCURRENCY:
  The snapshot store has no locking of its own. The service is the single
  writer: writes hold an exclusive lock, reads a shared one. Concurrent
  external writers remain undefined behavior.

SEPARATION:
  Decide never recomputes balances. Workflow legality and entitlement
  policy stay separate; callers consult the accounting engine when they
  want the number (see api: update_leave_status).

SEE ALSO:
  - balance.go: The accounting engine
  - store/jsonfile: The snapshot store behind the Store interface
*/
package leave

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// =============================================================================
// STORE INTERFACE - What the workflow needs from persistence
// =============================================================================

// Store loads and replaces the snapshot. Save is whole-document and
// atomic: it either fully replaces the prior snapshot or leaves it be.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
}

// =============================================================================
// SERVICE - The single writer over the snapshot
// =============================================================================

// Service runs workflow and accounting operations against a Store.
type Service struct {
	store Store
	log   *zap.Logger

	mu    sync.RWMutex
	now   func() time.Time
	newID func() string
}

// NewService wires the workflow service. A nil logger logs nowhere.
func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store: store,
		log:   log.Named("leave_service"),
		now:   time.Now,
		newID: func() string { return "req-" + uuid.NewString() },
	}
}

// SubmitInput carries a new request. Days are derived, never supplied.
type SubmitInput struct {
	EmployeeID string
	Type       Type
	Start      Date
	End        Date
	Reason     string
}

// DecideInput carries an approval or rejection.
type DecideInput struct {
	RequestID string
	Status    Status // StatusApproved or StatusRejected
	DecidedBy string
	Comments  string
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Submit validates and persists a new pending request. The employee must
// exist and be active; the range must be countable under the leave type's
// policy (business days unless the policy counts calendar days).
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := st.Employee(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !emp.Active {
		return nil, &InactiveEmployeeError{ID: emp.ID}
	}
	if _, err := ParseType(string(in.Type)); err != nil {
		return nil, err
	}

	pol := PolicyFor(in.Type)
	days, err := BusinessDays(in.Start, in.End, !pol.CalendarDays)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		// Weekend-only span under weekend exclusion.
		return nil, &InvalidRangeError{Start: in.Start, End: in.End, Detail: "no working days in range"}
	}

	req := &Request{
		ID:            s.newID(),
		EmployeeID:    emp.ID,
		Type:          in.Type,
		StartDate:     in.Start,
		EndDate:       in.End,
		DaysRequested: days,
		Reason:        in.Reason,
		Status:        StatusPending,
		SubmittedAt:   s.now().UTC(),
	}
	if err := st.AddRequest(req); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}

	s.log.Info("leave request submitted",
		zap.String("request_id", req.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", string(req.Type)),
		zap.Int("days_requested", req.DaysRequested))
	return req, nil
}

// Decide approves or rejects a pending request and stamps the decision.
// Any other target status, or a request no longer pending, fails with
// InvalidTransitionError.
func (s *Service) Decide(ctx context.Context, in DecideInput) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	req, err := st.Request(in.RequestID)
	if err != nil {
		return nil, err
	}
	if in.Status != StatusApproved && in.Status != StatusRejected {
		return nil, &InvalidTransitionError{RequestID: req.ID, From: req.Status, To: in.Status}
	}
	if req.Status != StatusPending {
		return nil, &InvalidTransitionError{RequestID: req.ID, From: req.Status, To: in.Status}
	}

	decidedAt := s.now().UTC()
	req.Status = in.Status
	req.ApprovedBy = in.DecidedBy
	req.DecidedAt = &decidedAt
	req.Comments = in.Comments

	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}

	s.log.Info("leave request decided",
		zap.String("request_id", req.ID),
		zap.String("status", string(req.Status)),
		zap.String("decided_by", req.ApprovedBy))
	return req, nil
}

// Cancel withdraws a pending request. Decided requests stay decided:
// cancelling anything terminal fails with InvalidTransitionError.
func (s *Service) Cancel(ctx context.Context, requestID string) (*Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	req, err := st.Request(requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending {
		return nil, &InvalidTransitionError{RequestID: req.ID, From: req.Status, To: StatusCancelled}
	}

	decidedAt := s.now().UTC()
	req.Status = StatusCancelled
	req.DecidedAt = &decidedAt

	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}

	s.log.Info("leave request cancelled", zap.String("request_id", req.ID))
	return req, nil
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// List returns one employee's requests in insertion order, optionally
// filtered by status. No matches is an empty slice, not an error; an
// unknown employee is NotFoundError.
func (s *Service) List(ctx context.Context, employeeID string, filter Status) ([]*Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := st.Employee(employeeID); err != nil {
		return nil, err
	}
	if filter != "" {
		if _, err := ParseStatus(string(filter)); err != nil {
			return nil, err
		}
	}

	out := make([]*Request, 0)
	for _, req := range st.RequestsFor(employeeID) {
		if filter == "" || req.Status == filter {
			out = append(out, req)
		}
	}
	return out, nil
}

// Pending returns every pending request across the organization, ordered
// by submission time ascending - a stable FIFO view for approvers.
func (s *Service) Pending(ctx context.Context) ([]*Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Request, 0)
	for _, req := range st.Requests() {
		if req.Status == StatusPending {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

// Balance computes one leave-type balance via the accounting engine.
func (s *Service) Balance(ctx context.Context, employeeID string, t Type, year int) (Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return Balance{}, err
	}
	return ComputeBalance(st, employeeID, t, year)
}

// Balances computes balances for every relevant leave type.
func (s *Service) Balances(ctx context.Context, employeeID string, year int) ([]Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeBalances(st, employeeID, year)
}

// Employee resolves one employee record.
func (s *Service) Employee(ctx context.Context, id string) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Employee(id)
}

// Employees returns the directory sorted by employee id.
func (s *Service) Employees(ctx context.Context) ([]*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := st.Employees()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
