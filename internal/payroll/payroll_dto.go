package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actor is the authenticated caller performing a write.
type Actor struct {
	ID   string
	Name string
}

type CalculatePayrollRequest struct {
	EmployeeID string    `json:"employee_id" binding:"required,uuid"`
	Month      string    `json:"month" binding:"required,yearmonth"`
	Overrides  Overrides `json:"overrides"`
}

type BulkCalculateRequest struct {
	Month    string  `json:"month" binding:"required,yearmonth"`
	BranchID *string `json:"branch_id" binding:"omitempty,uuid"`
}

type FinalizePayrollRequest struct {
	Month       string   `json:"month" binding:"required,yearmonth"`
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
}

type ListMonthlySalariesRequest struct {
	Month    string  `form:"month" binding:"required,yearmonth"`
	BranchID *string `form:"branch_id" binding:"omitempty,uuid"`
}

type FinalizeResponse struct {
	Month     string `json:"month"`
	Requested int    `json:"requested"`
	Updated   int64  `json:"updated"`
	Finalized bool   `json:"finalized"`
}

type BulkRequestResponse struct {
	RequestID string `json:"request_id"`
	Month     string `json:"month"`
	Status    string `json:"status"`
}

type MonthlySalaryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	BranchID     *string `json:"branch_id,omitempty"`
	Month        string  `json:"month"`
	PayType      string  `json:"pay_type"`

	BaseSalary            decimal.Decimal `json:"base_salary"`
	StandardWorkDays      int             `json:"standard_work_days"`
	ActualWorkDays        int             `json:"actual_work_days"`
	PaidLeaveDays         decimal.Decimal `json:"paid_leave_days"`
	TotalWorkDays         decimal.Decimal `json:"total_work_days"`
	DailyRate             decimal.Decimal `json:"daily_rate"`
	SalaryBasedOnWorkDays decimal.Decimal `json:"salary_based_on_work_days"`
	RegularHours          decimal.Decimal `json:"regular_hours"`
	OvertimeHours         decimal.Decimal `json:"overtime_hours"`
	OvertimePay           decimal.Decimal `json:"overtime_pay"`
	LunchAllowance        decimal.Decimal `json:"lunch_allowance"`
	TransportAllowance    decimal.Decimal `json:"transport_allowance"`
	PhoneAllowance        decimal.Decimal `json:"phone_allowance"`
	OtherAllowance        decimal.Decimal `json:"other_allowance"`
	KPIPercent            decimal.Decimal `json:"kpi_percent"`
	KPIBonus              decimal.Decimal `json:"kpi_bonus"`
	NightShiftAllowance   decimal.Decimal `json:"night_shift_allowance"`
	AttendanceBonus       decimal.Decimal `json:"attendance_bonus"`
	LeavePay              decimal.Decimal `json:"leave_pay"`
	Bonus                 decimal.Decimal `json:"bonus"`
	Penalty               decimal.Decimal `json:"penalty"`
	GrossSalary           decimal.Decimal `json:"gross_salary"`
	InsuranceDeduction    decimal.Decimal `json:"insurance_deduction"`
	DependentsCount       int             `json:"dependents_count"`
	TaxableIncome         decimal.Decimal `json:"taxable_income"`
	PITDeduction          decimal.Decimal `json:"pit_deduction"`
	NetSalary             decimal.Decimal `json:"net_salary"`

	IsFinalized     bool    `json:"is_finalized"`
	FinalizedAt     *string `json:"finalized_at,omitempty"`
	FinalizedBy     *string `json:"finalized_by,omitempty"`
	FinalizedByName *string `json:"finalized_by_name,omitempty"`
	CalculatedBy    string  `json:"calculated_by"`
	CalculatedAt    string  `json:"calculated_at"`
}

func mapToResponse(row MonthlySalary) MonthlySalaryResponse {
	resp := MonthlySalaryResponse{
		ID:                    row.ID.String(),
		EmployeeID:            row.EmployeeID.String(),
		EmployeeName:          row.EmployeeName,
		Month:                 row.Month,
		PayType:               row.PayType,
		BaseSalary:            row.BaseSalary,
		StandardWorkDays:      row.StandardWorkDays,
		ActualWorkDays:        row.ActualWorkDays,
		PaidLeaveDays:         row.PaidLeaveDays,
		TotalWorkDays:         row.TotalWorkDays,
		DailyRate:             row.DailyRate,
		SalaryBasedOnWorkDays: row.SalaryBasedOnWorkDays,
		RegularHours:          row.RegularHours,
		OvertimeHours:         row.OvertimeHours,
		OvertimePay:           row.OvertimePay,
		LunchAllowance:        row.LunchAllowance,
		TransportAllowance:    row.TransportAllowance,
		PhoneAllowance:        row.PhoneAllowance,
		OtherAllowance:        row.OtherAllowance,
		KPIPercent:            row.KPIPercent,
		KPIBonus:              row.KPIBonus,
		NightShiftAllowance:   row.NightShiftAllowance,
		AttendanceBonus:       row.AttendanceBonus,
		LeavePay:              row.LeavePay,
		Bonus:                 row.Bonus,
		Penalty:               row.Penalty,
		GrossSalary:           row.GrossSalary,
		InsuranceDeduction:    row.InsuranceDeduction,
		DependentsCount:       row.DependentsCount,
		TaxableIncome:         row.TaxableIncome,
		PITDeduction:          row.PITDeduction,
		NetSalary:             row.NetSalary,
		IsFinalized:           row.IsFinalized,
		FinalizedByName:       row.FinalizedByName,
		CalculatedBy:          row.CalculatedBy.String(),
		CalculatedAt:          row.CalculatedAt.Format(time.RFC3339),
	}

	if row.BranchID != nil {
		v := row.BranchID.String()
		resp.BranchID = &v
	}
	if row.FinalizedAt != nil {
		v := row.FinalizedAt.Format(time.RFC3339)
		resp.FinalizedAt = &v
	}
	if row.FinalizedBy != nil {
		v := row.FinalizedBy.String()
		resp.FinalizedBy = &v
	}

	return resp
}

func mapToListResponse(rows []MonthlySalary) []MonthlySalaryResponse {
	resp := make([]MonthlySalaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp
}
