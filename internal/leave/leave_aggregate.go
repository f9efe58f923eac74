package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func paid(l LeaveRequest, employeeID uuid.UUID) bool {
	return l.EmployeeID == employeeID &&
		l.Status == StatusApproved &&
		l.LeaveType != nil && l.LeaveType.IsPaid
}

// WorkDayFunc reports whether a calendar day counts as a working day.
type WorkDayFunc func(day time.Time) bool

// SumPaidLeaveDays totals the employee's approved paid leave that falls in
// [from, to]. A request crossing the range boundary contributes total_days
// scaled by the share of its working days inside the range. Requests without
// a loaded leave type are not paid.
func SumPaidLeaveDays(rows []LeaveRequest, employeeID uuid.UUID, from, to time.Time, isWorkDay WorkDayFunc) decimal.Decimal {
	from = truncateDay(from)
	to = truncateDay(to)

	sum := decimal.Zero
	for _, l := range rows {
		if paid(l, employeeID) {
			sum = sum.Add(inRangeDays(l, from, to, isWorkDay))
		}
	}
	return sum
}

func inRangeDays(l LeaveRequest, from, to time.Time, isWorkDay WorkDayFunc) decimal.Decimal {
	start := truncateDay(l.StartDate)
	end := truncateDay(l.EndDate)
	if !start.Before(from) && !end.After(to) {
		return l.TotalDays
	}

	total, inside := countDays(start, end, from, to, isWorkDay)
	if total == 0 {
		// no working day at all: fall back to calendar days
		total, inside = countDays(start, end, from, to, nil)
	}
	if total == 0 || inside == 0 {
		return decimal.Zero
	}
	return l.TotalDays.
		Mul(decimal.NewFromInt(int64(inside))).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

func countDays(start, end, from, to time.Time, isWorkDay WorkDayFunc) (total, inside int) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWorkDay != nil && !isWorkDay(d) {
			continue
		}
		total++
		if !d.Before(from) && !d.After(to) {
			inside++
		}
	}
	return total, inside
}

// PaidLeaveDates expands paid requests into YYYY-MM-DD keys, clipped to
// [from, to].
func PaidLeaveDates(rows []LeaveRequest, employeeID uuid.UUID, from, to time.Time) map[string]struct{} {
	dates := make(map[string]struct{})
	from = truncateDay(from)
	to = truncateDay(to)

	for _, l := range rows {
		if !paid(l, employeeID) {
			continue
		}
		start := truncateDay(l.StartDate)
		end := truncateDay(l.EndDate)
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates[d.Format("2006-01-02")] = struct{}{}
		}
	}
	return dates
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
