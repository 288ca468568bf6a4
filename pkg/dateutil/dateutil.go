package dateutil

import (
	"time"
)

// WholeMonths converts a fractional number of years to whole months, dropping
// any partial month.
func WholeMonths(years float64) int {
	if years <= 0 {
		return 0
	}
	return int(years * 12)
}

// SplitMonths splits a month count into whole years and the remaining months.
func SplitMonths(months int) (years, remaining int) {
	return months / 12, months % 12
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths returns the first day of the month n months after t's month.
// Starting from the first avoids AddDate turning 31 January + 1 month into March.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}

// ParseYearMonth parses "2006-01" into the first day of that month (UTC).
func ParseYearMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}
