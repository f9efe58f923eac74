package employee

import (
	"context"

	"onebiz-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	FindActiveByCompany(ctx context.Context, companyID string, branchID *string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string, branchID *string) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true)

	if branchID != nil && *branchID != "" {
		db = db.Where("branch_id = ?", *branchID)
	}

	var employees []Employee
	err := db.Order("full_name ASC").Find(&employees).Error
	return employees, err
}
