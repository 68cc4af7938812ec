package leave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func balanceFixture(t *testing.T, requests ...*leave.Request) *leave.State {
	t.Helper()
	st, err := leave.NewState([]*leave.Employee{testEmployee("EMP001")}, requests)
	require.NoError(t, err)
	return st
}

func annualRequest(id string, status leave.Status, start, end leave.Date, days int) *leave.Request {
	r := testRequest(id, "EMP001", status)
	r.StartDate = start
	r.EndDate = end
	r.DaysRequested = days
	return r
}

// =============================================================================
// SINGLE-TYPE BALANCES
// =============================================================================

func TestComputeBalance_UsedAndPendingSplit(t *testing.T) {
	// GIVEN: 25 annual days; 10 approved and 5 pending in 2025
	// WHEN: Computing the 2025 annual balance
	// THEN: Remaining ignores pending, Available subtracts it

	st := balanceFixture(t,
		annualRequest("req-1", leave.StatusApproved, leave.NewDate(2025, 11, 3), leave.NewDate(2025, 11, 14), 10),
		annualRequest("req-2", leave.StatusPending, leave.NewDate(2025, 11, 17), leave.NewDate(2025, 11, 21), 5),
	)

	b, err := leave.ComputeBalance(st, "EMP001", leave.TypeAnnual, 2025)
	require.NoError(t, err)

	assert.Equal(t, 25, b.Entitlement)
	assert.Equal(t, 10, b.Used)
	assert.Equal(t, 5, b.Pending)
	assert.Equal(t, 15, b.Remaining)
	assert.Equal(t, 10, b.Available)
	assert.Equal(t, b.Entitlement-b.Used-b.Pending, b.Available)
}

func TestComputeBalance_TerminalNonApprovedIgnored(t *testing.T) {
	// Rejected and cancelled requests consume nothing.
	st := balanceFixture(t,
		annualRequest("req-1", leave.StatusRejected, leave.NewDate(2025, 11, 3), leave.NewDate(2025, 11, 7), 5),
		annualRequest("req-2", leave.StatusCancelled, leave.NewDate(2025, 11, 10), leave.NewDate(2025, 11, 14), 5),
	)

	b, err := leave.ComputeBalance(st, "EMP001", leave.TypeAnnual, 2025)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Used)
	assert.Equal(t, 0, b.Pending)
	assert.Equal(t, 25, b.Available)
}

func TestComputeBalance_YearAttribution(t *testing.T) {
	// GIVEN: An approved 2024 request and one starting in December 2025
	//        that runs into January 2026
	// WHEN: Computing the 2025 balance
	// THEN: Only the request starting in 2025 counts, in full

	st := balanceFixture(t,
		annualRequest("req-1", leave.StatusApproved, leave.NewDate(2024, 6, 3), leave.NewDate(2024, 6, 7), 5),
		annualRequest("req-2", leave.StatusApproved, leave.NewDate(2025, 12, 29), leave.NewDate(2026, 1, 2), 5),
	)

	b2025, err := leave.ComputeBalance(st, "EMP001", leave.TypeAnnual, 2025)
	require.NoError(t, err)
	assert.Equal(t, 5, b2025.Used)

	b2024, err := leave.ComputeBalance(st, "EMP001", leave.TypeAnnual, 2024)
	require.NoError(t, err)
	assert.Equal(t, 5, b2024.Used)

	b2026, err := leave.ComputeBalance(st, "EMP001", leave.TypeAnnual, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, b2026.Used, "spillover into 2026 is attributed to the start year")
}

func TestComputeBalance_NegativeAvailableSurfaced(t *testing.T) {
	// Approvals are never blocked, so the numbers can go negative and the
	// engine must say so rather than clamp.
	st := balanceFixture(t,
		annualRequest("req-1", leave.StatusApproved, leave.NewDate(2025, 3, 3), leave.NewDate(2025, 4, 11), 30),
		annualRequest("req-2", leave.StatusPending, leave.NewDate(2025, 11, 17), leave.NewDate(2025, 11, 21), 5),
	)

	b, err := leave.ComputeBalance(st, "EMP001", leave.TypeAnnual, 2025)
	require.NoError(t, err)

	assert.Equal(t, -5, b.Remaining)
	assert.Equal(t, -10, b.Available)
}

func TestComputeBalance_UnconfiguredTypeHasZeroEntitlement(t *testing.T) {
	r := testRequest("req-1", "EMP001", leave.StatusPending)
	r.Type = leave.TypePersonal
	st := balanceFixture(t, r)

	b, err := leave.ComputeBalance(st, "EMP001", leave.TypePersonal, 2025)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Entitlement)
	assert.Equal(t, 5, b.Pending)
	assert.Equal(t, -5, b.Available)
}

func TestComputeBalance_UnknownEmployee_NotFound(t *testing.T) {
	st := balanceFixture(t)

	_, err := leave.ComputeBalance(st, "EMP999", leave.TypeAnnual, 2025)
	assert.True(t, leave.IsNotFound(err))
}

// =============================================================================
// ALL-TYPE REPORTS
// =============================================================================

func TestComputeBalances_RelevantTypesOnly(t *testing.T) {
	// GIVEN: Annual and sick configured, one emergency day taken
	// WHEN: Reporting every balance
	// THEN: Tracked types appear, so does the used emergency type;
	//       maternity and paternity stay out of the report

	emergency := testRequest("req-1", "EMP001", leave.StatusApproved)
	emergency.Type = leave.TypeEmergency
	emergency.StartDate = leave.NewDate(2025, 11, 3)
	emergency.EndDate = leave.NewDate(2025, 11, 3)
	emergency.DaysRequested = 1
	st := balanceFixture(t, emergency)

	bs, err := leave.ComputeBalances(st, "EMP001", 2025)
	require.NoError(t, err)

	var types []leave.Type
	for _, b := range bs {
		types = append(types, b.Type)
	}
	assert.Equal(t, []leave.Type{leave.TypeAnnual, leave.TypeSick, leave.TypePersonal, leave.TypeEmergency}, types)
}
