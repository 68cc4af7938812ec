package api

import (
	"fmt"
	"strings"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// MARKDOWN RENDERING - Tool and resource result bodies
// =============================================================================
// Tool results are markdown text blocks: a heading, labeled fields, and
// the occasional note. Calling agents read these verbatim, so the shapes
// stay stable.

const timestampLayout = "2006-01-02 15:04"

func renderBalance(b leave.Balance) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Leave Balance Report: %s (%s)\n\n", b.EmployeeName, b.EmployeeID)
	fmt.Fprintf(&sb, "Year: %d\n", b.Year)
	fmt.Fprintf(&sb, "Leave type: %s\n\n", b.Type.Title())
	renderBalanceLines(&sb, b)
	sb.WriteString("\nAvailable = entitlement - used - pending.\n")
	return sb.String()
}

func renderBalances(employeeName, employeeID string, year int, bs []leave.Balance) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Leave Balance Report: %s (%s)\n\n", employeeName, employeeID)
	fmt.Fprintf(&sb, "Year: %d\n", year)
	for _, b := range bs {
		fmt.Fprintf(&sb, "\n## %s\n\n", b.Type.Title())
		renderBalanceLines(&sb, b)
	}
	sb.WriteString("\nAvailable = entitlement - used - pending.\n")
	return sb.String()
}

func renderBalanceLines(sb *strings.Builder, b leave.Balance) {
	fmt.Fprintf(sb, "- Entitlement: %d days\n", b.Entitlement)
	fmt.Fprintf(sb, "- Used: %d days\n", b.Used)
	fmt.Fprintf(sb, "- Remaining: %d days\n", b.Remaining)
	fmt.Fprintf(sb, "- Pending: %d days\n", b.Pending)
	fmt.Fprintf(sb, "- Available: %d days\n", b.Available)
}

func renderEmployee(e *leave.Employee) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Employee: %s\n\n", e.Name)
	fmt.Fprintf(&sb, "- ID: %s\n", e.ID)
	fmt.Fprintf(&sb, "- Email: %s\n", e.Email)
	fmt.Fprintf(&sb, "- Department: %s\n", e.Department)
	if e.Position != "" {
		fmt.Fprintf(&sb, "- Position: %s\n", e.Position)
	}
	if e.ManagerID != "" {
		fmt.Fprintf(&sb, "- Manager: %s\n", e.ManagerID)
	}
	fmt.Fprintf(&sb, "- Hire date: %s\n", e.HireDate)
	fmt.Fprintf(&sb, "- Status: %s\n", activeWord(e.Active))
	sb.WriteString(renderEntitlements(e))
	return sb.String()
}

func renderEntitlements(e *leave.Employee) string {
	var parts []string
	for _, t := range leave.Types() {
		if days, ok := e.Entitlements[t]; ok {
			parts = append(parts, fmt.Sprintf("%s %d days", t.Title(), days))
		}
	}
	if len(parts) == 0 {
		return "- Entitlements: none configured\n"
	}
	return fmt.Sprintf("- Entitlements: %s\n", strings.Join(parts, ", "))
}

func renderEmployeeList(es []*leave.Employee) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Employee Directory (%d)\n", len(es))
	for _, e := range es {
		fmt.Fprintf(&sb, "\n## %s - %s\n\n", e.ID, e.Name)
		fmt.Fprintf(&sb, "- Email: %s\n", e.Email)
		fmt.Fprintf(&sb, "- Department: %s\n", e.Department)
		fmt.Fprintf(&sb, "- Status: %s\n", activeWord(e.Active))
		sb.WriteString(renderEntitlements(e))
	}
	return sb.String()
}

func renderRequestDetail(heading string, r *leave.Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", heading)
	renderRequestLines(&sb, r)
	return sb.String()
}

func renderRequestLines(sb *strings.Builder, r *leave.Request) {
	fmt.Fprintf(sb, "- Request ID: %s\n", r.ID)
	fmt.Fprintf(sb, "- Employee: %s\n", r.EmployeeID)
	fmt.Fprintf(sb, "- Type: %s\n", r.Type.Title())
	fmt.Fprintf(sb, "- Dates: %s to %s (%d days)\n", r.StartDate, r.EndDate, r.DaysRequested)
	if r.Reason != "" {
		fmt.Fprintf(sb, "- Reason: %s\n", r.Reason)
	}
	fmt.Fprintf(sb, "- Status: %s\n", r.Status.Title())
	fmt.Fprintf(sb, "- Submitted: %s\n", r.SubmittedAt.Format(timestampLayout))
	if r.ApprovedBy != "" {
		fmt.Fprintf(sb, "- Decided by: %s\n", r.ApprovedBy)
	}
	if r.DecidedAt != nil {
		fmt.Fprintf(sb, "- Decided at: %s\n", r.DecidedAt.Format(timestampLayout))
	}
	if r.Comments != "" {
		fmt.Fprintf(sb, "- Comments: %s\n", r.Comments)
	}
}

func renderRequestList(employeeID string, rs []*leave.Request) string {
	if len(rs) == 0 {
		return fmt.Sprintf("No leave requests found for employee %s.\n", employeeID)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Leave Requests for %s (%d)\n", employeeID, len(rs))
	for _, r := range rs {
		fmt.Fprintf(&sb, "\n## %s\n\n", r.ID)
		renderRequestLines(&sb, r)
	}
	return sb.String()
}

func renderPending(rs []*leave.Request, nameByID map[string]string) string {
	if len(rs) == 0 {
		return "No pending leave requests requiring approval.\n"
	}
	var sb strings.Builder
	sb.WriteString("# Pending Leave Requests\n")
	for _, r := range rs {
		name := nameByID[r.EmployeeID]
		if name == "" {
			name = r.EmployeeID
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", r.ID)
		fmt.Fprintf(&sb, "- Employee: %s (%s)\n", name, r.EmployeeID)
		fmt.Fprintf(&sb, "- Type: %s\n", r.Type.Title())
		fmt.Fprintf(&sb, "- Dates: %s to %s (%d days)\n", r.StartDate, r.EndDate, r.DaysRequested)
		if r.Reason != "" {
			fmt.Fprintf(&sb, "- Reason: %s\n", r.Reason)
		}
		fmt.Fprintf(&sb, "- Submitted: %s\n", r.SubmittedAt.Format(timestampLayout))
	}
	fmt.Fprintf(&sb, "\nTotal pending requests: %d\n", len(rs))
	return sb.String()
}

func renderWorkingDays(start, end leave.Date, excludeWeekends bool, days int) string {
	var sb strings.Builder
	sb.WriteString("# Working Days Calculation\n\n")
	fmt.Fprintf(&sb, "- Start date: %s\n", start)
	fmt.Fprintf(&sb, "- End date: %s\n", end)
	fmt.Fprintf(&sb, "- Calendar days: %d\n", leave.SpanDays(start, end))
	fmt.Fprintf(&sb, "- Exclude weekends: %s\n", yesNo(excludeWeekends))
	fmt.Fprintf(&sb, "- Working days: %d\n", days)
	return sb.String()
}

func renderPolicies() string {
	var sb strings.Builder
	sb.WriteString("# Company Leave Policies\n")
	for _, p := range leave.Policies() {
		fmt.Fprintf(&sb, "\n## %s Leave\n\n", p.Type.Title())
		fmt.Fprintf(&sb, "%s\n\n", p.Summary)
		if p.CalendarDays {
			sb.WriteString("- Counting: calendar days, weekends included\n")
		} else {
			sb.WriteString("- Counting: business days, weekends excluded\n")
		}
		if p.Tracked {
			sb.WriteString("- Accounting: draws down the annual entitlement\n")
		} else {
			sb.WriteString("- Accounting: not entitlement-tracked\n")
		}
	}
	sb.WriteString(`
## Approval Process

- Submit requests at least 2 weeks in advance
- HR manager approval required
- Department head approval for extended leave

## Notes

- Leave cannot be carried over without approval
- Unused sick leave expires at year end
- All leave subject to business requirements
`)
	return sb.String()
}

func activeWord(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
