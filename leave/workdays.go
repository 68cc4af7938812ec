package leave

// =============================================================================
// WORKING-DAY CALCULATOR - Pure date arithmetic
// =============================================================================

// BusinessDays counts the days in [start, end], inclusive of both ends.
// With excludeWeekends set, Saturdays and Sundays do not count, so a
// weekend-only range counts 0. There is no holiday calendar; the count is
// a pure function of its inputs.
//
// Fails with InvalidRangeError when end is before start.
func BusinessDays(start, end Date, excludeWeekends bool) (int, error) {
	if end.Before(start) {
		return 0, &InvalidRangeError{Start: start, End: end}
	}
	if !excludeWeekends {
		return SpanDays(start, end), nil
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !d.IsWeekend() {
			count++
		}
	}
	return count, nil
}

// SpanDays returns the inclusive calendar span between two dates, 0 when
// end is before start.
func SpanDays(start, end Date) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Time().Sub(start.Time()).Hours()/24) + 1
}
