package ledger

import "time"

// UnpaidMonths derives the months owed for a tenancy that started at start.
// Every month from the month of start through the month of now, both
// inclusive, is due unless it appears in paid. The start instant is moved
// into now's location before its month is taken, so callers control the
// calendar by the clock they pass. The result is ascending and never nil.
func UnpaidMonths(start time.Time, paid []YearMonth, now time.Time) []YearMonth {
	first := MonthOf(start.In(now.Location()))
	last := MonthOf(now)

	elapsed := MonthsBetween(first, last) + 1
	if elapsed <= 0 {
		return []YearMonth{}
	}

	settled := make(map[YearMonth]struct{}, len(paid))
	for _, m := range paid {
		settled[m] = struct{}{}
	}

	due := make([]YearMonth, 0, elapsed)
	for i := range elapsed {
		m := first.AddMonths(i)
		if _, ok := settled[m]; ok {
			continue
		}
		due = append(due, m)
	}
	return due
}

// IsDue reports whether month is among the unpaid months at now.
func IsDue(start time.Time, paid []YearMonth, now time.Time, month YearMonth) bool {
	return Contains(UnpaidMonths(start, paid, now), month)
}
