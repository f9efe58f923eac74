package leave_test

import (
	"context"
	"testing"

	"onebiz-payroll/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLeaveRepository_FindApprovedByEmployeeAndRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	repo := leave.NewRepository(gormDB)

	companyID := uuid.NewString()
	employeeID := uuid.NewString()
	leaveTypeID := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE .*status = .*NOT \(end_date < .* OR start_date > .*\).*ORDER BY start_date ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "employee_id", "leave_type_id", "start_date", "end_date", "total_days", "status"}).
			AddRow(uuid.NewString(), companyID, employeeID, leaveTypeID, date(2024, 3, 4), date(2024, 3, 5), "2.0", "approved"))
	mock.ExpectQuery(`SELECT \* FROM "leave_types" WHERE "leave_types"."id" = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "name", "is_paid"}).
			AddRow(leaveTypeID, companyID, "Annual", true))

	got, err := repo.FindApprovedByEmployeeAndRange(context.Background(), companyID, employeeID, date(2024, 3, 1), date(2024, 3, 31))

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].LeaveType)
	assert.True(t, got[0].LeaveType.IsPaid)
	assert.Equal(t, "2", got[0].TotalDays.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
