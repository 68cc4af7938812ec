/*
policy.go - Per-type leave policy table

PURPOSE:
  Fixes how each leave type is counted and accounted. The type set is
  closed, so the table is a compile-time catalog rather than runtime
  configuration.

POLICY DIMENSIONS:
  Tracked:      the type draws down a per-employee annual entitlement.
                Untracked types still get balances reported; their
                entitlement is whatever the employee record configures,
                usually 0, and exhaustion shows as available <= 0.
  CalendarDays: days_requested counts every calendar day in the span
                instead of business days. Statutory family leave runs in
                whole weeks, weekends included.

SEE ALSO:
  - workdays.go: The counting the CalendarDays flag selects between
  - workflow.go: Applies the table on submission
*/
package leave

// TypePolicy describes how one leave type is counted and reported.
type TypePolicy struct {
	Type         Type
	Tracked      bool
	CalendarDays bool
	Summary      string // one-line policy text for the published guidelines
}

var typePolicies = map[Type]TypePolicy{
	TypeAnnual: {
		Type:    TypeAnnual,
		Tracked: true,
		Summary: "Standard entitlement 25 days per year (senior staff 28-30). Approval required in advance; more than 10 consecutive days needs director sign-off.",
	},
	TypeSick: {
		Type:    TypeSick,
		Tracked: true,
		Summary: "Standard entitlement 10-15 days per year. Medical certificate required from the third consecutive day. Unused days expire at year end.",
	},
	TypePersonal: {
		Type:    TypePersonal,
		Tracked: true,
		Summary: "Short-notice personal days drawn from a small tracked allowance where configured.",
	},
	TypeMaternity: {
		Type:         TypeMaternity,
		CalendarDays: true,
		Summary:      "Up to 26 weeks, counted in calendar days.",
	},
	TypePaternity: {
		Type:         TypePaternity,
		CalendarDays: true,
		Summary:      "Up to 4 weeks, counted in calendar days.",
	},
	TypeEmergency: {
		Type:    TypeEmergency,
		Summary: "Emergency family leave, up to 5 days per year, granted case by case.",
	},
}

// PolicyFor returns the policy for a leave type. Unknown types get the
// zero policy; parse boundaries keep them out of real flows.
func PolicyFor(t Type) TypePolicy {
	return typePolicies[t]
}

// Policies returns the full table in canonical type order.
func Policies() []TypePolicy {
	types := Types()
	out := make([]TypePolicy, 0, len(types))
	for _, t := range types {
		out = append(out, typePolicies[t])
	}
	return out
}
