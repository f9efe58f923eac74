package salaryconfig

import (
	"context"

	"onebiz-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_config_repo.go -destination=mock/salary_config_repo_mock.go -package=mock
type Repository interface {
	FindActiveByPayType(ctx context.Context, companyID string, payType string) ([]SalaryConfig, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveByPayType(ctx context.Context, companyID string, payType string) ([]SalaryConfig, error) {
	var rows []SalaryConfig
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("pay_type = ?", payType).
		Where("is_active = ?", true).
		Order("config_key ASC").
		Find(&rows).Error
	return rows, err
}
