package payroll_test

import (
	"testing"
	"time"

	"onebiz-payroll/internal/attendance"
	"onebiz-payroll/internal/employee"
	"onebiz-payroll/internal/holiday"
	"onebiz-payroll/internal/leave"
	"onebiz-payroll/internal/payroll"
	payrollerrors "onebiz-payroll/internal/payroll/errors"
	"onebiz-payroll/internal/salaryconfig"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march2024, _ = payroll.ParseMonth("2024-03", nil)

func ptr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func at(day, hour int) *time.Time {
	t := time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func shift(emp uuid.UUID, checkIn *time.Time, hours, ot, status string) attendance.Attendance {
	return attendance.Attendance{
		ID:            uuid.New(),
		EmployeeID:    emp,
		CheckIn:       checkIn,
		HoursWorked:   dec(hours),
		OvertimeHours: dec(ot),
		Status:        status,
	}
}

func paidLeave(emp uuid.UUID, from, to int, days string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: emp,
		StartDate:  time.Date(2024, 3, from, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, to, 0, 0, 0, 0, time.UTC),
		TotalDays:  dec(days),
		Status:     leave.StatusApproved,
		LeaveType:  &leave.LeaveType{Name: "Annual", IsPaid: true},
	}
}

func monthlyEmployee(base string) employee.Employee {
	return employee.Employee{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		FullName:   "Nguyen Van A",
		PayType:    employee.PayTypeMonthly,
		BaseSalary: dec(base),
	}
}

// twentyDays is 20 full non-Sunday shifts in March 2024.
func twentyDays(emp uuid.UUID) []attendance.Attendance {
	days := []int{1, 2, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 22, 23}
	rows := make([]attendance.Attendance, 0, len(days))
	for _, d := range days {
		rows = append(rows, shift(emp, at(d, 8), "8", "0", attendance.StatusApproved))
	}
	return rows
}

func TestCalculate_MonthlyProration(t *testing.T) {
	emp := monthlyEmployee("10000000")

	res, err := payroll.Calculate(payroll.CalculationInput{
		Employee:   emp,
		Period:     march2024,
		Attendance: twentyDays(emp.ID),
		Leaves:     []leave.LeaveRequest{paidLeave(emp.ID, 26, 27, "2")},
	})
	require.NoError(t, err)

	assert.Equal(t, 26, res.StandardWorkDays)
	assert.Equal(t, 20, res.ActualWorkDays)
	assertDecimal(t, "2", res.PaidLeaveDays)
	assertDecimal(t, "22", res.TotalWorkDays)
	require.NotNil(t, res.Monthly)
	assertDecimal(t, "384615.38", res.Monthly.DailyRate)
	assertDecimal(t, "8461538.46", res.Monthly.SalaryBasedOnWorkDays)
	assertDecimal(t, "8461538.46", res.GrossSalary)
	assert.Empty(t, res.Monthly.OverlapDates)
	assert.Equal(t, "2024-03", res.Month)
	assert.Nil(t, res.Hourly)
}

func TestCalculate_MonthlyInsurance(t *testing.T) {
	emp := monthlyEmployee("10000000")
	cfg := salaryconfig.MonthlyConfig{Common: salaryconfig.Common{
		BHXHRate: salaryconfig.Some(dec("8")),
		BHYTRate: salaryconfig.Some(dec("1.5")),
		BHTNRate: salaryconfig.Some(dec("1")),
	}}

	t.Run("disabled", func(t *testing.T) {
		cfg.HasInsurance = salaryconfig.Some(decimal.Zero)
		res, err := payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024, Monthly: cfg})
		require.NoError(t, err)
		assertDecimal(t, "0", res.InsuranceDeduction)
	})

	t.Run("enabled uses base salary", func(t *testing.T) {
		cfg.HasInsurance = salaryconfig.Some(decimal.NewFromInt(1))
		res, err := payroll.Calculate(payroll.CalculationInput{
			Employee:   emp,
			Period:     march2024,
			Monthly:    cfg,
			Attendance: twentyDays(emp.ID),
		})
		require.NoError(t, err)
		assertDecimal(t, "1050000", res.InsuranceDeduction)
	})
}

func TestCalculate_ZeroAttendance(t *testing.T) {
	emp := monthlyEmployee("10000000")
	emp.TransportAllowance = dec("500000")
	emp.KPITarget = dec("2000000")
	cfg := salaryconfig.MonthlyConfig{Common: salaryconfig.Common{
		LunchAllowancePerDay: salaryconfig.Some(dec("30000")),
		PhoneAllowance:       salaryconfig.Some(dec("200000")),
	}}

	res, err := payroll.Calculate(payroll.CalculationInput{
		Employee:  emp,
		Period:    march2024,
		Monthly:   cfg,
		Overrides: payroll.Overrides{Bonus: ptr("300000"), Penalty: ptr("100000")},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ActualWorkDays)
	assertDecimal(t, "0", res.Monthly.SalaryBasedOnWorkDays)
	assertDecimal(t, "0", res.LunchAllowance)
	assertDecimal(t, "200000", res.PhoneAllowance)
	// transport + phone + kpi + bonus - penalty
	assertDecimal(t, "2900000", res.GrossSalary)
}

func TestCalculate_EmployeeAllowanceWinsOverConfig(t *testing.T) {
	emp := monthlyEmployee("10000000")
	emp.LunchAllowance = dec("50000")
	cfg := salaryconfig.MonthlyConfig{Common: salaryconfig.Common{
		LunchAllowancePerDay: salaryconfig.Some(dec("30000")),
	}}

	res, err := payroll.Calculate(payroll.CalculationInput{
		Employee:   emp,
		Period:     march2024,
		Monthly:    cfg,
		Attendance: twentyDays(emp.ID),
	})
	require.NoError(t, err)
	assertDecimal(t, "1000000", res.LunchAllowance)
}

func TestCalculate_StandardWorkDaysFallback(t *testing.T) {
	emp := monthlyEmployee("10000000")
	var holidays []holiday.Holiday
	for d := 1; d <= 31; d++ {
		holidays = append(holidays, holiday.Holiday{
			ID:   uuid.New(),
			Date: time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC),
		})
	}

	res, err := payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024, Holidays: holidays})
	require.NoError(t, err)
	assert.Equal(t, 26, res.StandardWorkDays)

	cfg := salaryconfig.MonthlyConfig{Common: salaryconfig.Common{StandardWorkDays: salaryconfig.Some(decimal.Zero)}}
	_, err = payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024, Holidays: holidays, Monthly: cfg})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStandardWorkDays)
}

func TestCalculate_KPIBonusIsLinear(t *testing.T) {
	emp := monthlyEmployee("10000000")
	emp.KPITarget = dec("2000000")

	for pct, want := range map[string]string{"0": "0", "50": "1000000", "100": "2000000", "120": "2400000"} {
		res, err := payroll.Calculate(payroll.CalculationInput{
			Employee:  emp,
			Period:    march2024,
			Overrides: payroll.Overrides{KPIPercent: ptr(pct)},
		})
		require.NoError(t, err)
		assertDecimal(t, want, res.Monthly.KPIBonus, "kpi %s%%", pct)
	}

	res, err := payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024})
	require.NoError(t, err)
	assertDecimal(t, "2000000", res.Monthly.KPIBonus)
}

func TestCalculate_MonthlyOvertimeAndCap(t *testing.T) {
	emp := monthlyEmployee("10400000")
	rows := []attendance.Attendance{
		shift(emp.ID, at(4, 8), "5", "1", attendance.StatusApproved),
		shift(emp.ID, at(4, 14), "4", "1", attendance.StatusApproved),
	}

	res, err := payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024, Attendance: rows})
	require.NoError(t, err)

	assert.Equal(t, 1, res.ActualWorkDays)
	assertDecimal(t, "8", res.RegularHours)
	assertDecimal(t, "2", res.OvertimeHours)
	// daily 400000, hourly 50000, 2h at 1.5x
	assertDecimal(t, "150000", res.OvertimePay)
}

func TestCalculate_NetInvariantAndOverrides(t *testing.T) {
	emp := monthlyEmployee("30000000")
	emp.DependentsCount = 1
	cfg := salaryconfig.MonthlyConfig{Common: salaryconfig.Common{
		HasInsurance: salaryconfig.Some(decimal.NewFromInt(1)),
		BHXHRate:     salaryconfig.Some(dec("8")),
		BHYTRate:     salaryconfig.Some(dec("1.5")),
		BHTNRate:     salaryconfig.Some(dec("1")),
	}}
	in := payroll.CalculationInput{Employee: emp, Period: march2024, Monthly: cfg, Attendance: twentyDays(emp.ID)}

	res, err := payroll.Calculate(in)
	require.NoError(t, err)
	assert.True(t, res.PITDeduction.IsPositive())
	assertDecimal(t, res.GrossSalary.Sub(res.InsuranceDeduction).Sub(res.PITDeduction).String(), res.NetSalary)

	in.Overrides = payroll.Overrides{Insurance: ptr("500000"), PIT: ptr("0")}
	res, err = payroll.Calculate(in)
	require.NoError(t, err)
	assertDecimal(t, "500000", res.InsuranceDeduction)
	assertDecimal(t, "0", res.PITDeduction)
	assertDecimal(t, res.GrossSalary.Sub(dec("500000")).String(), res.NetSalary)
}

func TestCalculate_ReportsLeaveAttendanceOverlap(t *testing.T) {
	emp := monthlyEmployee("10000000")

	res, err := payroll.Calculate(payroll.CalculationInput{
		Employee:   emp,
		Period:     march2024,
		Attendance: twentyDays(emp.ID),
		Leaves:     []leave.LeaveRequest{paidLeave(emp.ID, 4, 5, "2")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-04", "2024-03-05"}, res.Monthly.OverlapDates)
	assertDecimal(t, "22", res.TotalWorkDays)
}

func TestCalculate_LeaveAcrossMonthsIsPaidOnce(t *testing.T) {
	emp := monthlyEmployee("10000000")
	feb, err := payroll.ParseMonth("2024-02", nil)
	require.NoError(t, err)
	req := paidLeave(emp.ID, 2, 2, "4")
	req.StartDate = time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	febRes, err := payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: feb, Leaves: []leave.LeaveRequest{req}})
	require.NoError(t, err)
	marRes, err := payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024, Leaves: []leave.LeaveRequest{req}})
	require.NoError(t, err)

	assertDecimal(t, "2", febRes.PaidLeaveDays)
	assertDecimal(t, "800000", febRes.Monthly.SalaryBasedOnWorkDays)
	assertDecimal(t, "2", marRes.PaidLeaveDays)
	assertDecimal(t, "769230.77", marRes.Monthly.SalaryBasedOnWorkDays)
	assertDecimal(t, "4", febRes.PaidLeaveDays.Add(marRes.PaidLeaveDays))
}

func TestCalculate_Hourly(t *testing.T) {
	emp := employee.Employee{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		FullName:   "Le Van C",
		PayType:    employee.PayTypeHourly,
		BaseSalary: dec("50000"),
	}
	cfg := salaryconfig.HourlyConfig{
		NightShiftAllowance: salaryconfig.Some(dec("100000")),
		AttendanceBonus:     salaryconfig.Some(dec("200000")),
	}
	holidays := []holiday.Holiday{{ID: uuid.New(), Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Name: "Women's Day"}}
	rows := []attendance.Attendance{
		shift(emp.ID, at(4, 8), "10", "2", attendance.StatusApproved),  // weekday
		shift(emp.ID, at(5, 22), "8", "0", attendance.StatusApproved),  // night
		shift(emp.ID, at(8, 8), "8", "3", attendance.StatusApproved),   // holiday
		shift(emp.ID, at(9, 8), "8", "1", attendance.StatusApproved),   // saturday
	}
	in := payroll.CalculationInput{
		Employee:   emp,
		Period:     march2024,
		Hourly:     cfg,
		Attendance: rows,
		Leaves:     []leave.LeaveRequest{paidLeave(emp.ID, 12, 12, "1")},
		Holidays:   holidays,
	}

	res, err := payroll.Calculate(in)
	require.NoError(t, err)
	require.NotNil(t, res.Hourly)
	assert.Nil(t, res.Monthly)

	assert.Equal(t, 25, res.StandardWorkDays)
	assert.Equal(t, 4, res.ActualWorkDays)
	assertDecimal(t, "1600000", res.Hourly.RegularPay)
	assertDecimal(t, "2", res.Hourly.WeekdayOvertimeHours)
	assertDecimal(t, "1", res.Hourly.WeekendOvertimeHours)
	assertDecimal(t, "3", res.Hourly.HolidayOvertimeHours)
	assertDecimal(t, "700000", res.OvertimePay)
	assert.Equal(t, 1, res.Hourly.NightShiftDays)
	assertDecimal(t, "100000", res.Hourly.NightShiftAllowance)
	assertDecimal(t, "200000", res.Hourly.AttendanceBonus)
	assertDecimal(t, "400000", res.Hourly.LeavePay)
	assertDecimal(t, "3000000", res.GrossSalary)
	assertDecimal(t, "3000000", res.NetSalary)

	t.Run("irregular attendance forfeits the bonus", func(t *testing.T) {
		late := in
		late.Attendance = append(append([]attendance.Attendance{}, rows...),
			shift(emp.ID, at(11, 9), "7", "0", attendance.StatusLate))

		res, err := payroll.Calculate(late)
		require.NoError(t, err)
		assertDecimal(t, "0", res.Hourly.AttendanceBonus)
		assert.Equal(t, 5, res.ActualWorkDays)
	})

	t.Run("configured rate when employee has none", func(t *testing.T) {
		noRate := in
		noRate.Employee.BaseSalary = decimal.Zero
		noRate.Hourly.HourlyRate = salaryconfig.Some(dec("40000"))

		res, err := payroll.Calculate(noRate)
		require.NoError(t, err)
		assertDecimal(t, "40000", res.Hourly.HourlyRate)
		assertDecimal(t, "1280000", res.Hourly.RegularPay)
	})
}

func TestCalculate_Rejects(t *testing.T) {
	emp := monthlyEmployee("10000000")

	_, err := payroll.Calculate(payroll.CalculationInput{
		Employee:  emp,
		Period:    march2024,
		Overrides: payroll.Overrides{Bonus: ptr("-1")},
	})
	assert.ErrorIs(t, err, payrollerrors.ErrNegativeOverride)

	emp.PayType = "daily"
	_, err = payroll.Calculate(payroll.CalculationInput{Employee: emp, Period: march2024})
	assert.ErrorIs(t, err, payrollerrors.ErrUnsupportedPayType)
}
