package payroll

import (
	"time"

	"onebiz-payroll/internal/attendance"
	"onebiz-payroll/internal/employee"
	"onebiz-payroll/internal/holiday"
	"onebiz-payroll/internal/leave"
	"onebiz-payroll/internal/salaryconfig"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Overrides are manual per-run adjustments. A nil field means the computed
// (or default) value is used; a non-nil field replaces it.
type Overrides struct {
	Bonus      *decimal.Decimal `json:"bonus,omitempty"`
	Penalty    *decimal.Decimal `json:"penalty,omitempty"`
	KPIPercent *decimal.Decimal `json:"kpi_percent,omitempty"`
	Insurance  *decimal.Decimal `json:"insurance,omitempty"`
	PIT        *decimal.Decimal `json:"pit,omitempty"`
}

func (o Overrides) bonus() decimal.Decimal {
	return valueOr(o.Bonus, decimal.Zero)
}

func (o Overrides) penalty() decimal.Decimal {
	return valueOr(o.Penalty, decimal.Zero)
}

func (o Overrides) kpiPercent() decimal.Decimal {
	return valueOr(o.KPIPercent, hundred)
}

func (o Overrides) validate() bool {
	for _, v := range []*decimal.Decimal{o.Bonus, o.Penalty, o.KPIPercent, o.Insurance, o.PIT} {
		if v != nil && v.IsNegative() {
			return false
		}
	}
	return true
}

func valueOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// CalculationInput is everything a single employee-month needs. Only the
// config matching the employee's pay type is read.
type CalculationInput struct {
	Employee   employee.Employee
	Period     Period
	Monthly    salaryconfig.MonthlyConfig
	Hourly     salaryconfig.HourlyConfig
	Attendance []attendance.Attendance
	Leaves     []leave.LeaveRequest
	Holidays   []holiday.Holiday
	Overrides  Overrides
}

// CalculationResult is the computed breakdown for one employee-month.
// Exactly one of Monthly and Hourly is set, matching PayType.
type CalculationResult struct {
	CompanyID    uuid.UUID  `json:"company_id"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	BranchID     *uuid.UUID `json:"branch_id,omitempty"`
	Month        string     `json:"month"`
	PayType      string     `json:"pay_type"`

	StandardWorkDays int             `json:"standard_work_days"`
	ActualWorkDays   int             `json:"actual_work_days"`
	PaidLeaveDays    decimal.Decimal `json:"paid_leave_days"`
	TotalWorkDays    decimal.Decimal `json:"total_work_days"`
	RegularHours     decimal.Decimal `json:"regular_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`

	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	LunchAllowance     decimal.Decimal `json:"lunch_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	PhoneAllowance     decimal.Decimal `json:"phone_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	Bonus              decimal.Decimal `json:"bonus"`
	Penalty            decimal.Decimal `json:"penalty"`

	GrossSalary        decimal.Decimal `json:"gross_salary"`
	InsuranceDeduction decimal.Decimal `json:"insurance_deduction"`
	DependentsCount    int             `json:"dependents_count"`
	TaxableIncome      decimal.Decimal `json:"taxable_income"`
	PITDeduction       decimal.Decimal `json:"pit_deduction"`
	NetSalary          decimal.Decimal `json:"net_salary"`

	Monthly *MonthlyComponents `json:"monthly,omitempty"`
	Hourly  *HourlyComponents  `json:"hourly,omitempty"`

	CalculatedAt time.Time `json:"calculated_at"`
}

type MonthlyComponents struct {
	BaseSalary            decimal.Decimal `json:"base_salary"`
	DailyRate             decimal.Decimal `json:"daily_rate"`
	SalaryBasedOnWorkDays decimal.Decimal `json:"salary_based_on_work_days"`
	HourlyRate            decimal.Decimal `json:"hourly_rate"`
	KPITarget             decimal.Decimal `json:"kpi_target"`
	KPIPercent            decimal.Decimal `json:"kpi_percent"`
	KPIBonus              decimal.Decimal `json:"kpi_bonus"`
	// OverlapDates lists dates counted both as attended and as paid leave.
	OverlapDates []string `json:"overlap_dates,omitempty"`
}

type HourlyComponents struct {
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	RegularPay           decimal.Decimal `json:"regular_pay"`
	WeekdayOvertimeHours decimal.Decimal `json:"weekday_overtime_hours"`
	WeekendOvertimeHours decimal.Decimal `json:"weekend_overtime_hours"`
	HolidayOvertimeHours decimal.Decimal `json:"holiday_overtime_hours"`
	NightShiftDays       int             `json:"night_shift_days"`
	NightShiftAllowance  decimal.Decimal `json:"night_shift_allowance"`
	AttendanceBonus      decimal.Decimal `json:"attendance_bonus"`
	LeavePay             decimal.Decimal `json:"leave_pay"`
}

// BulkItem is one employee's outcome in a bulk run. OK decides which of
// Result and Error is meaningful.
type BulkItem struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	OK           bool               `json:"ok"`
	Result       *CalculationResult `json:"result,omitempty"`
	Error        string             `json:"error,omitempty"`
}
