package leave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// BUSINESS DAY COUNTING
// =============================================================================

func TestBusinessDays_Table(t *testing.T) {
	// November 2025: the 1st is a Saturday, the 3rd a Monday.
	tests := []struct {
		name            string
		start, end      leave.Date
		excludeWeekends bool
		want            int
	}{
		{
			name:            "single weekday",
			start:           leave.NewDate(2025, 11, 3),
			end:             leave.NewDate(2025, 11, 3),
			excludeWeekends: true,
			want:            1,
		},
		{
			name:            "single saturday excluded counts zero",
			start:           leave.NewDate(2025, 11, 1),
			end:             leave.NewDate(2025, 11, 1),
			excludeWeekends: true,
			want:            0,
		},
		{
			name:            "single saturday included counts one",
			start:           leave.NewDate(2025, 11, 1),
			end:             leave.NewDate(2025, 11, 1),
			excludeWeekends: false,
			want:            1,
		},
		{
			name:            "monday through friday",
			start:           leave.NewDate(2025, 11, 3),
			end:             leave.NewDate(2025, 11, 7),
			excludeWeekends: true,
			want:            5,
		},
		{
			name:            "full week excluding weekend",
			start:           leave.NewDate(2025, 11, 3),
			end:             leave.NewDate(2025, 11, 9),
			excludeWeekends: true,
			want:            5,
		},
		{
			name:            "full week including weekend",
			start:           leave.NewDate(2025, 11, 3),
			end:             leave.NewDate(2025, 11, 9),
			excludeWeekends: false,
			want:            7,
		},
		{
			name:            "weekend only range excluded",
			start:           leave.NewDate(2025, 11, 8),
			end:             leave.NewDate(2025, 11, 9),
			excludeWeekends: true,
			want:            0,
		},
		{
			name:            "two weeks spanning two weekends",
			start:           leave.NewDate(2025, 11, 1),
			end:             leave.NewDate(2025, 11, 14),
			excludeWeekends: true,
			want:            10,
		},
		{
			name:            "year boundary",
			start:           leave.NewDate(2025, 12, 29),
			end:             leave.NewDate(2026, 1, 2),
			excludeWeekends: true,
			want:            5,
		},
		{
			name:            "leap day week",
			start:           leave.NewDate(2024, 2, 26),
			end:             leave.NewDate(2024, 3, 1),
			excludeWeekends: true,
			want:            5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := leave.BusinessDays(tt.start, tt.end, tt.excludeWeekends)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBusinessDays_EndBeforeStart_Rejected(t *testing.T) {
	// GIVEN: A range whose end precedes its start
	// WHEN: Counting business days, with or without weekend exclusion
	// THEN: InvalidRangeError, never a negative count

	start := leave.NewDate(2025, 11, 7)
	end := leave.NewDate(2025, 11, 3)

	for _, exclude := range []bool{true, false} {
		_, err := leave.BusinessDays(start, end, exclude)
		assert.Error(t, err)
		assert.True(t, leave.IsInvalidRange(err))

		var rangeErr *leave.InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, start, rangeErr.Start)
		assert.Equal(t, end, rangeErr.End)
	}
}

// =============================================================================
// CALENDAR SPANS
// =============================================================================

func TestSpanDays_InclusiveCount(t *testing.T) {
	assert.Equal(t, 1, leave.SpanDays(leave.NewDate(2025, 11, 3), leave.NewDate(2025, 11, 3)))
	assert.Equal(t, 7, leave.SpanDays(leave.NewDate(2025, 11, 3), leave.NewDate(2025, 11, 9)))
	assert.Equal(t, 14, leave.SpanDays(leave.NewDate(2025, 11, 1), leave.NewDate(2025, 11, 14)))

	// Inverted ranges collapse to zero rather than going negative.
	assert.Equal(t, 0, leave.SpanDays(leave.NewDate(2025, 11, 9), leave.NewDate(2025, 11, 3)))
}
