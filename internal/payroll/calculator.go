package payroll

import (
	"sort"
	"time"

	"onebiz-payroll/internal/attendance"
	"onebiz-payroll/internal/employee"
	"onebiz-payroll/internal/holiday"
	"onebiz-payroll/internal/leave"
	payrollerrors "onebiz-payroll/internal/payroll/errors"
	"onebiz-payroll/internal/salaryconfig"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var (
	hoursPerDay         = decimal.NewFromInt(8)
	monthlyOTMultiplier = decimal.RequireFromString("1.5")
)

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// preferEmployee returns the employee amount when positive, otherwise the
// configured amount.
func preferEmployee(own decimal.Decimal, configured salaryconfig.Optional) decimal.Decimal {
	if own.IsPositive() {
		return own
	}
	return configured.Value()
}

// Calculate computes one employee-month. It does no I/O.
func Calculate(in CalculationInput) (CalculationResult, error) {
	if !in.Overrides.validate() {
		return CalculationResult{}, payrollerrors.ErrNegativeOverride
	}

	switch in.Employee.PayType {
	case employee.PayTypeMonthly:
		return calculateMonthly(in)
	case employee.PayTypeHourly:
		return calculateHourly(in)
	default:
		return CalculationResult{}, payrollerrors.ErrUnsupportedPayType
	}
}

func baseResult(in CalculationInput) CalculationResult {
	emp := in.Employee
	return CalculationResult{
		CompanyID:       emp.CompanyID,
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		BranchID:        emp.BranchID,
		Month:           in.Period.String(),
		PayType:         emp.PayType,
		DependentsCount: emp.DependentsCount,
		Bonus:           in.Overrides.bonus(),
		Penalty:         in.Overrides.penalty(),
		CalculatedAt:    time.Now().UTC(),
	}
}

func standardWorkDays(in CalculationInput, cfg salaryconfig.Common) (int, error) {
	std := holiday.StandardWorkDays(in.Period.Year, in.Period.Month, in.Holidays, cfg.FallbackWorkDays())
	if std <= 0 {
		return 0, payrollerrors.ErrInvalidStandardWorkDays
	}
	return std, nil
}

// applyDeductions fills insurance, taxable income, PIT and net from the
// result's gross. insuranceBase is base salary for monthly staff and
// regular pay for hourly staff.
func applyDeductions(res *CalculationResult, insuranceBase decimal.Decimal, cfg salaryconfig.Common, o Overrides) {
	insurance := decimal.Zero
	switch {
	case o.Insurance != nil:
		insurance = *o.Insurance
	case cfg.InsuranceEnabled():
		insurance = money(InsuranceDeduction(insuranceBase, cfg.InsuranceRatePercent()))
	}

	taxable := TaxableIncome(res.GrossSalary, insurance, res.DependentsCount)
	pit := CalculatePIT(taxable)
	if o.PIT != nil {
		pit = *o.PIT
	}

	res.InsuranceDeduction = insurance
	res.TaxableIncome = taxable
	res.PITDeduction = pit
	res.NetSalary = res.GrossSalary.Sub(insurance).Sub(pit)
}

func calculateMonthly(in CalculationInput) (CalculationResult, error) {
	cfg := in.Monthly
	emp := in.Employee
	res := baseResult(in)

	std, err := standardWorkDays(in, cfg.Common)
	if err != nil {
		return CalculationResult{}, err
	}

	summary := attendance.Aggregate(in.Attendance, emp.ID, attendance.AggregateOptions{
		MinHoursForLunch: cfg.MinHours(),
		Location:         in.Period.Location(),
	})
	paidLeave := paidLeaveDays(in)

	actual := decimal.NewFromInt(int64(summary.ActualWorkDays))
	totalWorkDays := actual.Add(paidLeave)

	dailyRate := emp.BaseSalary.Div(decimal.NewFromInt(int64(std)))
	hourlyRate := dailyRate.Div(hoursPerDay)
	salaryBased := money(dailyRate.Mul(totalWorkDays))

	kpiPercent := in.Overrides.kpiPercent()
	kpiBonus := money(emp.KPITarget.Mul(kpiPercent).Div(hundred))
	otPay := money(summary.OvertimeHours.Mul(hourlyRate).Mul(monthlyOTMultiplier))

	res.StandardWorkDays = std
	res.ActualWorkDays = summary.ActualWorkDays
	res.PaidLeaveDays = paidLeave
	res.TotalWorkDays = totalWorkDays
	res.RegularHours = summary.RegularHours
	res.OvertimeHours = summary.OvertimeHours
	res.OvertimePay = otPay
	res.LunchAllowance = money(preferEmployee(emp.LunchAllowance, cfg.LunchAllowancePerDay).Mul(actual))
	res.TransportAllowance = preferEmployee(emp.TransportAllowance, cfg.TransportAllowance)
	res.PhoneAllowance = preferEmployee(emp.PhoneAllowance, cfg.PhoneAllowance)
	res.OtherAllowance = preferEmployee(emp.OtherAllowance, cfg.OtherAllowance)

	res.GrossSalary = salaryBased.
		Add(res.LunchAllowance).
		Add(res.TransportAllowance).
		Add(res.PhoneAllowance).
		Add(res.OtherAllowance).
		Add(kpiBonus).
		Add(otPay).
		Add(res.Bonus).
		Sub(res.Penalty)

	applyDeductions(&res, emp.BaseSalary, cfg.Common, in.Overrides)

	res.Monthly = &MonthlyComponents{
		BaseSalary:            emp.BaseSalary,
		DailyRate:             money(dailyRate),
		SalaryBasedOnWorkDays: salaryBased,
		HourlyRate:            money(hourlyRate),
		KPITarget:             emp.KPITarget,
		KPIPercent:            kpiPercent,
		KPIBonus:              kpiBonus,
		OverlapDates:          overlapDates(summary, in),
	}
	return res, nil
}

// paidLeaveDays counts only the part of each paid request that lands in the
// period, so a request crossing a month boundary is paid once.
func paidLeaveDays(in CalculationInput) decimal.Decimal {
	return leave.SumPaidLeaveDays(in.Leaves, in.Employee.ID, in.Period.Start(), in.Period.LastDay(), func(d time.Time) bool {
		return holiday.IsWorkDay(d, in.Holidays)
	})
}

// overlapDates returns qualifying attendance dates that also fall inside a
// paid leave request. Both are still paid.
func overlapDates(summary attendance.Summary, in CalculationInput) []string {
	leaveDates := leave.PaidLeaveDates(in.Leaves, in.Employee.ID, in.Period.Start(), in.Period.LastDay())
	if len(leaveDates) == 0 {
		return nil
	}
	var out []string
	for _, key := range summary.DateKeys() {
		if _, ok := leaveDates[key]; ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func calculateHourly(in CalculationInput) (CalculationResult, error) {
	cfg := in.Hourly
	emp := in.Employee
	res := baseResult(in)

	std, err := standardWorkDays(in, cfg.Common)
	if err != nil {
		return CalculationResult{}, err
	}

	nightStart, nightEnd := cfg.NightWindow()
	summary := attendance.Aggregate(in.Attendance, emp.ID, attendance.AggregateOptions{
		MinHoursForLunch:    cfg.MinHours(),
		Location:            in.Period.Location(),
		NightShiftStartHour: nightStart,
		NightShiftEndHour:   nightEnd,
	})
	paidLeave := paidLeaveDays(in)
	actual := decimal.NewFromInt(int64(summary.ActualWorkDays))

	rate := preferEmployee(emp.BaseSalary, cfg.HourlyRate)
	regularPay := money(summary.RegularHours.Mul(rate))

	weekdayOT, weekendOT, holidayOT := decimal.Zero, decimal.Zero, decimal.Zero
	for _, day := range summary.Days {
		if day.OvertimeHours.IsZero() {
			continue
		}
		switch {
		case holiday.IsHoliday(day.Date, in.Holidays):
			holidayOT = holidayOT.Add(day.OvertimeHours)
		case day.Date.Weekday() == time.Saturday || day.Date.Weekday() == time.Sunday:
			weekendOT = weekendOT.Add(day.OvertimeHours)
		default:
			weekdayOT = weekdayOT.Add(day.OvertimeHours)
		}
	}
	otPay := money(rate.Mul(
		weekdayOT.Mul(cfg.WeekdayMultiplier()).
			Add(weekendOT.Mul(cfg.WeekendMultiplier())).
			Add(holidayOT.Mul(cfg.HolidayMultiplier())),
	))

	nightDays := summary.NightShiftDays()
	nightAllowance := cfg.NightShiftAllowance.Value().Mul(decimal.NewFromInt(int64(nightDays)))

	attendanceBonus := decimal.Zero
	if cfg.AttendanceBonus.Value().IsPositive() && summary.ActualWorkDays > 0 && summary.IrregularCount == 0 {
		attendanceBonus = cfg.AttendanceBonus.Value()
	}

	leavePay := money(paidLeave.Mul(hoursPerDay).Mul(rate))

	res.StandardWorkDays = std
	res.ActualWorkDays = summary.ActualWorkDays
	res.PaidLeaveDays = paidLeave
	res.TotalWorkDays = actual.Add(paidLeave)
	res.RegularHours = summary.RegularHours
	res.OvertimeHours = summary.OvertimeHours
	res.OvertimePay = otPay
	res.LunchAllowance = money(preferEmployee(emp.LunchAllowance, cfg.LunchAllowancePerDay).Mul(actual))
	res.TransportAllowance = preferEmployee(emp.TransportAllowance, cfg.TransportAllowance)
	res.PhoneAllowance = preferEmployee(emp.PhoneAllowance, cfg.PhoneAllowance)
	res.OtherAllowance = preferEmployee(emp.OtherAllowance, cfg.OtherAllowance)

	res.GrossSalary = regularPay.
		Add(otPay).
		Add(nightAllowance).
		Add(attendanceBonus).
		Add(leavePay).
		Add(res.LunchAllowance).
		Add(res.TransportAllowance).
		Add(res.PhoneAllowance).
		Add(res.OtherAllowance).
		Add(res.Bonus).
		Sub(res.Penalty)

	applyDeductions(&res, regularPay, cfg.Common, in.Overrides)

	res.Hourly = &HourlyComponents{
		HourlyRate:           rate,
		RegularPay:           regularPay,
		WeekdayOvertimeHours: weekdayOT,
		WeekendOvertimeHours: weekendOT,
		HolidayOvertimeHours: holidayOT,
		NightShiftDays:       nightDays,
		NightShiftAllowance:  nightAllowance,
		AttendanceBonus:      attendanceBonus,
		LeavePay:             leavePay,
	}
	return res, nil
}
