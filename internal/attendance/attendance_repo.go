package attendance

import (
	"context"
	"time"

	"onebiz-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	FindByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByEmployeeAndRange returns rows whose check-in falls in [start, end).
func (r *repository) FindByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("check_in >= ? AND check_in < ?", start, end).
		Order("check_in ASC").
		Find(&rows).Error
	return rows, err
}
