package payrollerrors

import (
	"net/http"

	"onebiz-payroll/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrEmptyEmployeeIDs = apperror.New(
		apperror.CodeInvalidInput,
		"employee_ids must not be empty",
		http.StatusBadRequest,
	)
	ErrNegativeOverride = apperror.New(
		apperror.CodeInvalidInput,
		"override values cannot be negative",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUnsupportedPayType = apperror.New(
		apperror.CodeInvalidState,
		"employee pay type is not supported",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidStandardWorkDays = apperror.New(
		apperror.CodeInvalidState,
		"standard work days must be positive",
		http.StatusUnprocessableEntity,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollFinalized = apperror.New(
		apperror.CodeInvalidState,
		"payroll for this month is finalized, unfinalize it before recalculating",
		http.StatusConflict,
	)
	ErrPayrollConflict = apperror.New(
		apperror.CodeConflict,
		"payroll was modified concurrently, retry the request",
		http.StatusConflict,
	)
	ErrForbiddenEmployee = apperror.New(
		apperror.CodeForbidden,
		"you can only access your own payroll",
		http.StatusForbidden,
	)
	ErrDataSourceTimeout = apperror.New(
		apperror.CodeServiceUnavailable,
		"payroll data could not be loaded in time",
		http.StatusServiceUnavailable,
	)
)
