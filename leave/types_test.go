package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func testEmployee(id string) *leave.Employee {
	return &leave.Employee{
		ID:         id,
		Name:       "Employee " + id,
		Email:      id + "@example.com",
		Department: "Engineering",
		HireDate:   leave.NewDate(2022, 1, 10),
		Entitlements: map[leave.Type]int{
			leave.TypeAnnual: 25,
			leave.TypeSick:   10,
		},
		Active: true,
	}
}

func testRequest(id, employeeID string, status leave.Status) *leave.Request {
	return &leave.Request{
		ID:            id,
		EmployeeID:    employeeID,
		Type:          leave.TypeAnnual,
		StartDate:     leave.NewDate(2025, 11, 3),
		EndDate:       leave.NewDate(2025, 11, 7),
		DaysRequested: 5,
		Reason:        "Family trip",
		Status:        status,
		SubmittedAt:   time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

// =============================================================================
// CLOSED ENUMERATIONS
// =============================================================================

func TestParseType_AcceptsEveryKnownType(t *testing.T) {
	for _, want := range leave.Types() {
		got, err := leave.ParseType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseType_RejectsUnknownValues(t *testing.T) {
	// Parsing is strict: no aliases, no case folding.
	for _, raw := range []string{"", "unpaid", "Annual", "sick ", "vacation"} {
		_, err := leave.ParseType(raw)
		assert.Error(t, err, "input %q should be rejected", raw)
		assert.ErrorIs(t, err, leave.ErrUnknownLeaveType)
	}
}

func TestParseStatus_AcceptsEveryKnownStatus(t *testing.T) {
	for _, want := range []leave.Status{
		leave.StatusPending,
		leave.StatusApproved,
		leave.StatusRejected,
		leave.StatusCancelled,
	} {
		got, err := leave.ParseStatus(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseStatus_RejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "denied", "Pending", "approved "} {
		_, err := leave.ParseStatus(raw)
		assert.Error(t, err, "input %q should be rejected", raw)
		assert.ErrorIs(t, err, leave.ErrUnknownStatus)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, leave.StatusPending.Terminal())
	assert.True(t, leave.StatusApproved.Terminal())
	assert.True(t, leave.StatusRejected.Terminal())
	assert.True(t, leave.StatusCancelled.Terminal())
}

// =============================================================================
// STATE CONSTRUCTION INVARIANTS
// =============================================================================

func TestNewState_ValidRecords(t *testing.T) {
	st, err := leave.NewState(
		[]*leave.Employee{testEmployee("EMP001"), testEmployee("EMP002")},
		[]*leave.Request{testRequest("req-1", "EMP001", leave.StatusPending)},
	)
	require.NoError(t, err)

	emp, err := st.Employee("EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Employee EMP001", emp.Name)

	req, err := st.Request("req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, req.Status)
}

func TestNewState_RejectsBadRecords(t *testing.T) {
	employees := []*leave.Employee{testEmployee("EMP001")}

	tests := []struct {
		name   string
		mutate func(r *leave.Request)
		wantIn string
	}{
		{
			name:   "unknown employee reference",
			mutate: func(r *leave.Request) { r.EmployeeID = "EMP999" },
			wantIn: "unknown employee",
		},
		{
			name:   "unknown leave type",
			mutate: func(r *leave.Request) { r.Type = "unpaid" },
			wantIn: "unknown leave type",
		},
		{
			name:   "unknown status",
			mutate: func(r *leave.Request) { r.Status = "denied" },
			wantIn: "unknown status",
		},
		{
			name:   "end before start",
			mutate: func(r *leave.Request) { r.StartDate, r.EndDate = r.EndDate, r.StartDate },
			wantIn: "before start",
		},
		{
			name:   "zero day count",
			mutate: func(r *leave.Request) { r.DaysRequested = 0 },
			wantIn: "days_requested",
		},
		{
			name:   "day count exceeds span",
			mutate: func(r *leave.Request) { r.DaysRequested = 50 },
			wantIn: "exceeds",
		},
		{
			name:   "missing dates",
			mutate: func(r *leave.Request) { r.StartDate = leave.Date{}; r.EndDate = leave.Date{} },
			wantIn: "missing start or end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest("req-1", "EMP001", leave.StatusPending)
			tt.mutate(req)

			_, err := leave.NewState(employees, []*leave.Request{req})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestNewState_RejectsDuplicateIDs(t *testing.T) {
	_, err := leave.NewState(
		[]*leave.Employee{testEmployee("EMP001"), testEmployee("EMP001")},
		nil,
	)
	assert.ErrorContains(t, err, "duplicate employee id")

	_, err = leave.NewState(
		[]*leave.Employee{testEmployee("EMP001")},
		[]*leave.Request{
			testRequest("req-1", "EMP001", leave.StatusPending),
			testRequest("req-1", "EMP001", leave.StatusApproved),
		},
	)
	assert.ErrorContains(t, err, "duplicate request id")
}

func TestNewState_RejectsUnknownEntitlementKey(t *testing.T) {
	emp := testEmployee("EMP001")
	emp.Entitlements["unpaid"] = 5

	_, err := leave.NewState([]*leave.Employee{emp}, nil)
	assert.ErrorIs(t, err, leave.ErrUnknownLeaveType)
}

// =============================================================================
// STATE LOOKUPS
// =============================================================================

func TestState_Lookup_NotFound(t *testing.T) {
	st, err := leave.NewState([]*leave.Employee{testEmployee("EMP001")}, nil)
	require.NoError(t, err)

	_, err = st.Employee("EMP999")
	assert.True(t, leave.IsNotFound(err))
	assert.ErrorContains(t, err, "EMP999")

	_, err = st.Request("req-missing")
	assert.True(t, leave.IsNotFound(err))
}

func TestState_RequestsFor_FiltersByEmployee(t *testing.T) {
	st, err := leave.NewState(
		[]*leave.Employee{testEmployee("EMP001"), testEmployee("EMP002")},
		[]*leave.Request{
			testRequest("req-1", "EMP001", leave.StatusApproved),
			testRequest("req-2", "EMP002", leave.StatusPending),
			testRequest("req-3", "EMP001", leave.StatusPending),
		},
	)
	require.NoError(t, err)

	mine := st.RequestsFor("EMP001")
	require.Len(t, mine, 2)
	assert.Equal(t, "req-1", mine[0].ID)
	assert.Equal(t, "req-3", mine[1].ID)

	assert.Empty(t, st.RequestsFor("EMP999"))
}

func TestState_AddRequest_ChecksInvariants(t *testing.T) {
	st, err := leave.NewState([]*leave.Employee{testEmployee("EMP001")}, nil)
	require.NoError(t, err)

	require.NoError(t, st.AddRequest(testRequest("req-1", "EMP001", leave.StatusPending)))

	// Same id again is rejected, and the collection is unchanged.
	err = st.AddRequest(testRequest("req-1", "EMP001", leave.StatusPending))
	assert.ErrorContains(t, err, "duplicate request id")
	assert.Len(t, st.Requests(), 1)
}
