package payroll

import (
	"context"
	"errors"
	"strings"

	payrollerrors "onebiz-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const monthlySalaryUniqueConstraint = "uq_monthly_salaries_employee_month"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return payrollerrors.ErrDataSourceTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == monthlySalaryUniqueConstraint {
		return payrollerrors.ErrPayrollConflict
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, monthlySalaryUniqueConstraint) {
		return payrollerrors.ErrPayrollConflict
	}

	return err
}
