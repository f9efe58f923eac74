package holiday

import "time"

// IsHoliday reports whether day matches a holiday, either on the exact
// date or, for recurring holidays, on month and day.
func IsHoliday(day time.Time, holidays []Holiday) bool {
	for _, h := range holidays {
		hm, hd := h.Date.Month(), h.Date.Day()
		if hm != day.Month() || hd != day.Day() {
			continue
		}
		if h.IsRecurring || h.Date.Year() == day.Year() {
			return true
		}
	}
	return false
}

// IsWorkDay reports whether day is neither a Sunday nor a holiday.
func IsWorkDay(day time.Time, holidays []Holiday) bool {
	return day.Weekday() != time.Sunday && !IsHoliday(day, holidays)
}

// StandardWorkDays counts the days of the month that are neither Sundays
// nor holidays. fallback is returned when nothing is left.
func StandardWorkDays(year int, month time.Month, holidays []Holiday, fallback int) int {
	count := 0
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if IsWorkDay(d, holidays) {
			count++
		}
	}
	if count == 0 {
		return fallback
	}
	return count
}
