package leave

import (
	"fmt"
	"time"
)

// =============================================================================
// SEED DATASET - Default records for a fresh install
// =============================================================================

// SeedState returns the sample dataset written when no snapshot document
// exists yet: five employees and a little request history, including one
// pending request for approvers to look at. The approved records are
// historical decisions; submission itself always starts at pending.
func SeedState() *State {
	employees := []*Employee{
		{
			ID:         "EMP001",
			Name:       "Sachin Goswami",
			Email:      "sachin.goswami@company.com",
			Department: "Engineering",
			Position:   "Senior Software Engineer",
			ManagerID:  "EMP003",
			HireDate:   NewDate(2022, time.January, 15),
			Entitlements: map[Type]int{
				TypeAnnual: 25,
				TypeSick:   10,
			},
			Active: true,
		},
		{
			ID:         "EMP002",
			Name:       "Ravi Punekar",
			Email:      "ravi.punekar@company.com",
			Department: "Marketing",
			Position:   "Marketing Manager",
			ManagerID:  "EMP003",
			HireDate:   NewDate(2021, time.March, 10),
			Entitlements: map[Type]int{
				TypeAnnual: 28,
				TypeSick:   12,
			},
			Active: true,
		},
		{
			ID:         "EMP003",
			Name:       "Rahul Deshpande",
			Email:      "rahul.deshpande@company.com",
			Department: "HR",
			Position:   "HR Director",
			HireDate:   NewDate(2020, time.June, 5),
			Entitlements: map[Type]int{
				TypeAnnual: 30,
				TypeSick:   15,
			},
			Active: true,
		},
		{
			ID:         "EMP004",
			Name:       "Archana Jadhav",
			Email:      "archana.jadhav@company.com",
			Department: "Finance",
			Position:   "Financial Analyst",
			ManagerID:  "EMP003",
			HireDate:   NewDate(2023, time.February, 20),
			Entitlements: map[Type]int{
				TypeAnnual: 22,
				TypeSick:   10,
			},
			Active: true,
		},
		{
			ID:         "EMP005",
			Name:       "Preeti Kulkarni",
			Email:      "preeti.kulkarni@company.com",
			Department: "Sales",
			Position:   "Sales Executive",
			ManagerID:  "EMP002",
			HireDate:   NewDate(2021, time.September, 12),
			Entitlements: map[Type]int{
				TypeAnnual: 25,
				TypeSick:   12,
			},
			Active: true,
		},
	}

	requests := []*Request{
		{
			ID:            "REQ001",
			EmployeeID:    "EMP001",
			Type:          TypeAnnual,
			StartDate:     NewDate(2025, time.November, 1),
			EndDate:       NewDate(2025, time.November, 5),
			DaysRequested: 3,
			Reason:        "Family vacation",
			Status:        StatusApproved,
			SubmittedAt:   time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC),
			ApprovedBy:    "HR Manager",
			DecidedAt:     timePtr(time.Date(2025, time.October, 2, 14, 30, 0, 0, time.UTC)),
		},
		{
			ID:            "REQ002",
			EmployeeID:    "EMP001",
			Type:          TypeSick,
			StartDate:     NewDate(2025, time.September, 15),
			EndDate:       NewDate(2025, time.September, 17),
			DaysRequested: 3,
			Reason:        "Flu symptoms",
			Status:        StatusApproved,
			SubmittedAt:   time.Date(2025, time.September, 15, 8, 30, 0, 0, time.UTC),
			ApprovedBy:    "HR Manager",
			DecidedAt:     timePtr(time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)),
		},
		{
			ID:            "REQ003",
			EmployeeID:    "EMP002",
			Type:          TypeAnnual,
			StartDate:     NewDate(2025, time.December, 20),
			EndDate:       NewDate(2025, time.December, 31),
			DaysRequested: 8,
			Reason:        "Holiday break",
			Status:        StatusPending,
			SubmittedAt:   time.Date(2025, time.October, 20, 11, 15, 0, 0, time.UTC),
		},
	}

	st, err := NewState(employees, requests)
	if err != nil {
		panic(fmt.Sprintf("seed state invalid: %v", err))
	}
	return st
}

func timePtr(t time.Time) *time.Time { return &t }
