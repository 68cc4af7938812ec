package leave_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/leave"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := leave.ParseDate("2025-11-03")
	require.NoError(t, err)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.November, d.Month())
	assert.Equal(t, 3, d.Day())
	assert.Equal(t, "2025-11-03", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "2025/11/03", "03-11-2025", "2025-13-01", "2025-11-32", "not a date"} {
		_, err := leave.ParseDate(raw)
		assert.Error(t, err, "input %q should not parse", raw)
	}
}

func TestDate_AddDays_CrossesMonthBoundary(t *testing.T) {
	d := leave.NewDate(2025, 11, 28)
	assert.Equal(t, "2025-12-03", d.AddDays(5).String())
	assert.Equal(t, "2025-11-23", d.AddDays(-5).String())
}

func TestDate_IsWeekend(t *testing.T) {
	assert.True(t, leave.NewDate(2025, 11, 1).IsWeekend())  // Saturday
	assert.True(t, leave.NewDate(2025, 11, 2).IsWeekend())  // Sunday
	assert.False(t, leave.NewDate(2025, 11, 3).IsWeekend()) // Monday
	assert.False(t, leave.NewDate(2025, 11, 7).IsWeekend()) // Friday
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := leave.NewDate(2025, 11, 3)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-11-03"`, string(data))

	var back leave.Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))
}

func TestDate_JSONZeroValue(t *testing.T) {
	// Zero dates travel as empty strings so optional fields stay optional.
	var zero leave.Date

	data, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))

	var back leave.Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &back))
	assert.True(t, back.IsZero())
}
