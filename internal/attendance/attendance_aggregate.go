package attendance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxRegularHoursPerDay caps what a single date contributes to regular hours.
var MaxRegularHoursPerDay = decimal.NewFromInt(8)

type AggregateOptions struct {
	MinHoursForLunch decimal.Decimal
	// Location decides which calendar date a check-in belongs to. nil is UTC.
	Location *time.Location
	// NightShiftStartHour and NightShiftEndHour bound the night window. Equal
	// values disable night shift detection.
	NightShiftStartHour int
	NightShiftEndHour   int
}

type DaySummary struct {
	Date          time.Time
	TotalHours    decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	Qualifies     bool
	NightShift    bool
	Statuses      []string
}

type Summary struct {
	ActualWorkDays int
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	Days           []DaySummary
	// IrregularCount counts late, early leave and absent rows in the period.
	IrregularCount int
}

// Countable reports whether a row takes part in pay. Rows with recorded
// hours count even before they are approved.
func Countable(a Attendance) bool {
	switch a.Status {
	case StatusApproved, StatusOnTime, StatusLate:
		return true
	}
	return a.HoursWorked.IsPositive()
}

func irregular(status string) bool {
	return status == StatusLate || status == StatusEarlyLeave || status == StatusAbsent
}

// Aggregate folds an employee's attendance rows into per-date totals.
// Rows without a check-in are skipped.
func Aggregate(rows []Attendance, employeeID uuid.UUID, opts AggregateOptions) Summary {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	summary := Summary{
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
	}
	byDate := make(map[string]*DaySummary)

	for _, row := range rows {
		if row.EmployeeID != employeeID {
			continue
		}
		if irregular(row.Status) {
			summary.IrregularCount++
		}
		if !Countable(row) || row.CheckIn == nil || row.CheckIn.IsZero() {
			continue
		}

		in := row.CheckIn.In(loc)
		key := in.Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &DaySummary{
				Date:          time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, loc),
				TotalHours:    decimal.Zero,
				OvertimeHours: decimal.Zero,
			}
			byDate[key] = day
		}
		day.TotalHours = day.TotalHours.Add(row.HoursWorked)
		day.OvertimeHours = day.OvertimeHours.Add(row.OvertimeHours)
		day.Statuses = append(day.Statuses, row.Status)
		if inNightWindow(in.Hour(), opts.NightShiftStartHour, opts.NightShiftEndHour) {
			day.NightShift = true
		}
	}

	summary.Days = make([]DaySummary, 0, len(byDate))
	for _, day := range byDate {
		day.Qualifies = day.TotalHours.GreaterThanOrEqual(opts.MinHoursForLunch)
		day.RegularHours = decimal.Min(day.TotalHours, MaxRegularHoursPerDay)

		if day.Qualifies {
			summary.ActualWorkDays++
		}
		summary.RegularHours = summary.RegularHours.Add(day.RegularHours)
		summary.OvertimeHours = summary.OvertimeHours.Add(day.OvertimeHours)
		summary.Days = append(summary.Days, *day)
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Date.Before(summary.Days[j].Date)
	})

	return summary
}

// NightShiftDays counts dates flagged as night shifts.
func (s Summary) NightShiftDays() int {
	n := 0
	for _, d := range s.Days {
		if d.NightShift {
			n++
		}
	}
	return n
}

// DateKeys returns the YYYY-MM-DD keys of qualifying dates.
func (s Summary) DateKeys() []string {
	keys := make([]string, 0, len(s.Days))
	for _, d := range s.Days {
		if d.Qualifies {
			keys = append(keys, d.Date.Format("2006-01-02"))
		}
	}
	return keys
}

func inNightWindow(hour, start, end int) bool {
	switch {
	case start == end:
		return false
	case start > end:
		return hour >= start || hour < end
	default:
		return hour >= start && hour < end
	}
}
