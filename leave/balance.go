package leave

// =============================================================================
// ACCOUNTING ENGINE - Balance computation over the snapshot
// =============================================================================

// Balance is the leave accounting result for one employee, type, and year.
//
//	Remaining = Entitlement - Used
//	Available = Entitlement - Used - Pending
//
// Available may be negative; callers see the real number and decide what
// to do about it.
type Balance struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Type         Type   `json:"leave_type"`
	Year         int    `json:"year"`
	Entitlement  int    `json:"entitlement"`
	Used         int    `json:"used"`
	Pending      int    `json:"pending"`
	Remaining    int    `json:"remaining"`
	Available    int    `json:"available"`
}

// ComputeBalance derives the balance for one leave type. Used sums
// approved requests of that type whose start date falls in year; Pending
// sums the pending ones. The engine only computes - it never blocks an
// approval, however negative the result.
//
// Fails with NotFoundError when the employee id is unknown.
func ComputeBalance(st *State, employeeID string, t Type, year int) (Balance, error) {
	emp, err := st.Employee(employeeID)
	if err != nil {
		return Balance{}, err
	}

	used, pending := 0, 0
	for _, req := range st.RequestsFor(employeeID) {
		if req.Type != t || req.StartDate.Year() != year {
			continue
		}
		switch req.Status {
		case StatusApproved:
			used += req.DaysRequested
		case StatusPending:
			pending += req.DaysRequested
		}
	}

	entitlement := emp.Entitlement(t)
	return Balance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Type:         t,
		Year:         year,
		Entitlement:  entitlement,
		Used:         used,
		Pending:      pending,
		Remaining:    entitlement - used,
		Available:    entitlement - used - pending,
	}, nil
}

// ComputeBalances reports one balance per relevant leave type, in
// canonical type order. A type is relevant when its policy tracks an
// entitlement, the employee has it configured, or the year carries any
// approved or pending usage of it.
func ComputeBalances(st *State, employeeID string, year int) ([]Balance, error) {
	emp, err := st.Employee(employeeID)
	if err != nil {
		return nil, err
	}

	var out []Balance
	for _, t := range Types() {
		b, err := ComputeBalance(st, emp.ID, t, year)
		if err != nil {
			return nil, err
		}
		_, configured := emp.Entitlements[t]
		if PolicyFor(t).Tracked || configured || b.Used > 0 || b.Pending > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}
