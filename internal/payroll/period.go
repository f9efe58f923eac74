package payroll

import (
	"time"

	payrollerrors "onebiz-payroll/internal/payroll/errors"
)

const monthLayout = "2006-01"

// Period is one calendar month in a fixed location.
type Period struct {
	Year  int
	Month time.Month
	loc   *time.Location
}

// ParseMonth parses "YYYY-MM". A nil location means UTC.
func ParseMonth(v string, loc *time.Location) (Period, error) {
	t, err := time.Parse(monthLayout, v)
	if err != nil {
		return Period{}, payrollerrors.ErrInvalidPeriodFormat
	}
	if loc == nil {
		loc = time.UTC
	}
	return Period{Year: t.Year(), Month: t.Month(), loc: loc}, nil
}

func (p Period) String() string {
	return p.Start().Format(monthLayout)
}

func (p Period) Location() *time.Location {
	if p.loc == nil {
		return time.UTC
	}
	return p.loc
}

// Start is the first instant of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.Location())
}

// End is the first instant of the following month.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// LastDay is the last calendar date of the month at midnight.
func (p Period) LastDay() time.Time {
	return p.End().AddDate(0, 0, -1)
}
