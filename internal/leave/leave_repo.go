package leave

import (
	"context"
	"time"

	"onebiz-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindApprovedByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindApprovedByEmployeeAndRange returns approved requests overlapping
// [start, end] with their leave type preloaded.
func (r *repository) FindApprovedByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("LeaveType").
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", start, end).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
