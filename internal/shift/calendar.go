package shift

import "time"

// dateKey normalizes a timestamp to its calendar day.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Calendar is the explicit holiday set for a roster year.
// Every Sunday is additionally treated as holiday-equivalent for styling
// and summary purposes; IsHoliday answers only the explicit set.
type Calendar struct {
	holidays map[string]bool
}

// NewCalendar builds a Calendar from the enumerated holiday dates.
func NewCalendar(dates []time.Time) Calendar {
	m := make(map[string]bool, len(dates))
	for _, d := range dates {
		m[dateKey(d)] = true
	}
	return Calendar{holidays: m}
}

// IsHoliday reports whether d is in the explicit holiday set.
func (c Calendar) IsHoliday(d time.Time) bool {
	return c.holidays[dateKey(d)]
}

// IsHolidayOrSunday reports whether d is holiday-equivalent.
func (c Calendar) IsHolidayOrSunday(d time.Time) bool {
	return c.IsHoliday(d) || d.Weekday() == time.Sunday
}

// ContextFor builds the interpretation context for a date.
func (c Calendar) ContextFor(d time.Time) Context {
	return Context{
		Date:      d,
		IsHoliday: c.IsHoliday(d),
		IsSunday:  d.Weekday() == time.Sunday,
	}
}
