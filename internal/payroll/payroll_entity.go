package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySalary is the persisted payroll for one employee-month. Once
// IsFinalized is set the row must not be recalculated until unfinalized.
type MonthlySalary struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_salaries_employee_month,priority:1"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_salaries_employee_month,priority:2"`
	BranchID   *uuid.UUID `gorm:"type:uuid;index"`
	Month      string     `gorm:"type:varchar(7);not null;uniqueIndex:uq_monthly_salaries_employee_month,priority:3;index"`
	PayType    string     `gorm:"type:varchar(20);not null"`

	BaseSalary            decimal.Decimal `gorm:"type:numeric;not null"`
	StandardWorkDays      int             `gorm:"not null"`
	ActualWorkDays        int             `gorm:"not null"`
	PaidLeaveDays         decimal.Decimal `gorm:"type:numeric;not null"`
	TotalWorkDays         decimal.Decimal `gorm:"type:numeric;not null"`
	DailyRate             decimal.Decimal `gorm:"type:numeric;not null"`
	SalaryBasedOnWorkDays decimal.Decimal `gorm:"type:numeric;not null"`
	RegularHours          decimal.Decimal `gorm:"type:numeric;not null"`
	OvertimeHours         decimal.Decimal `gorm:"type:numeric;not null"`
	OvertimePay           decimal.Decimal `gorm:"type:numeric;not null"`

	LunchAllowance      decimal.Decimal `gorm:"type:numeric;not null"`
	TransportAllowance  decimal.Decimal `gorm:"type:numeric;not null"`
	PhoneAllowance      decimal.Decimal `gorm:"type:numeric;not null"`
	OtherAllowance      decimal.Decimal `gorm:"type:numeric;not null"`
	KPIPercent          decimal.Decimal `gorm:"column:kpi_percent;type:numeric;not null"`
	KPIBonus            decimal.Decimal `gorm:"column:kpi_bonus;type:numeric;not null"`
	NightShiftAllowance decimal.Decimal `gorm:"type:numeric;not null"`
	AttendanceBonus     decimal.Decimal `gorm:"type:numeric;not null"`
	LeavePay            decimal.Decimal `gorm:"type:numeric;not null"`
	Bonus               decimal.Decimal `gorm:"type:numeric;not null"`
	Penalty             decimal.Decimal `gorm:"type:numeric;not null"`

	GrossSalary        decimal.Decimal `gorm:"type:numeric;not null"`
	InsuranceDeduction decimal.Decimal `gorm:"type:numeric;not null"`
	DependentsCount    int             `gorm:"not null"`
	TaxableIncome      decimal.Decimal `gorm:"type:numeric;not null"`
	PITDeduction       decimal.Decimal `gorm:"column:pit_deduction;type:numeric;not null"`
	NetSalary          decimal.Decimal `gorm:"type:numeric;not null"`

	// Finalize lock & audit
	IsFinalized     bool       `gorm:"not null"`
	FinalizedAt     *time.Time `gorm:"type:timestamptz"`
	FinalizedBy     *uuid.UUID `gorm:"type:uuid"`
	FinalizedByName *string    `gorm:"type:varchar(150)"`
	CalculatedBy    uuid.UUID  `gorm:"type:uuid;not null"`
	CalculatedAt    time.Time  `gorm:"type:timestamptz;not null"`

	EmployeeName string `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const monthlySalariesTable = "monthly_salaries"

func (MonthlySalary) TableName() string {
	return monthlySalariesTable
}

// upsertColumns are overwritten when a non-finalized row is recalculated.
var upsertColumns = []string{
	"branch_id", "pay_type",
	"base_salary", "standard_work_days", "actual_work_days", "paid_leave_days",
	"total_work_days", "daily_rate", "salary_based_on_work_days",
	"regular_hours", "overtime_hours", "overtime_pay",
	"lunch_allowance", "transport_allowance", "phone_allowance", "other_allowance",
	"kpi_percent", "kpi_bonus", "night_shift_allowance", "attendance_bonus", "leave_pay",
	"bonus", "penalty",
	"gross_salary", "insurance_deduction", "dependents_count", "taxable_income",
	"pit_deduction", "net_salary",
	"calculated_by", "calculated_at", "updated_at",
}

// newMonthlySalary maps a result onto a row. Variant-specific columns the
// other pay type does not use are stored as zero.
func newMonthlySalary(res CalculationResult, actorID uuid.UUID) MonthlySalary {
	row := MonthlySalary{
		ID:                 uuid.New(),
		CompanyID:          res.CompanyID,
		EmployeeID:         res.EmployeeID,
		EmployeeName:       res.EmployeeName,
		BranchID:           res.BranchID,
		Month:              res.Month,
		PayType:            res.PayType,
		StandardWorkDays:   res.StandardWorkDays,
		ActualWorkDays:     res.ActualWorkDays,
		PaidLeaveDays:      res.PaidLeaveDays,
		TotalWorkDays:      res.TotalWorkDays,
		RegularHours:       res.RegularHours,
		OvertimeHours:      res.OvertimeHours,
		OvertimePay:        res.OvertimePay,
		LunchAllowance:     res.LunchAllowance,
		TransportAllowance: res.TransportAllowance,
		PhoneAllowance:     res.PhoneAllowance,
		OtherAllowance:     res.OtherAllowance,
		Bonus:              res.Bonus,
		Penalty:            res.Penalty,
		GrossSalary:        res.GrossSalary,
		InsuranceDeduction: res.InsuranceDeduction,
		DependentsCount:    res.DependentsCount,
		TaxableIncome:      res.TaxableIncome,
		PITDeduction:       res.PITDeduction,
		NetSalary:          res.NetSalary,
		CalculatedBy:       actorID,
		CalculatedAt:       res.CalculatedAt,

		BaseSalary:            decimal.Zero,
		DailyRate:             decimal.Zero,
		SalaryBasedOnWorkDays: decimal.Zero,
		KPIPercent:            decimal.Zero,
		KPIBonus:              decimal.Zero,
		NightShiftAllowance:   decimal.Zero,
		AttendanceBonus:       decimal.Zero,
		LeavePay:              decimal.Zero,
	}

	if m := res.Monthly; m != nil {
		row.BaseSalary = m.BaseSalary
		row.DailyRate = m.DailyRate
		row.SalaryBasedOnWorkDays = m.SalaryBasedOnWorkDays
		row.KPIPercent = m.KPIPercent
		row.KPIBonus = m.KPIBonus
	}
	if h := res.Hourly; h != nil {
		row.BaseSalary = h.HourlyRate
		row.SalaryBasedOnWorkDays = h.RegularPay
		row.NightShiftAllowance = h.NightShiftAllowance
		row.AttendanceBonus = h.AttendanceBonus
		row.LeavePay = h.LeavePay
	}
	if row.CalculatedAt.IsZero() {
		row.CalculatedAt = time.Now().UTC()
	}
	return row
}
