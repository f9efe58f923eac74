package holiday

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAllByCompany returns the tenant's holidays plus the shared ones.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("company_id = ? OR company_id IS NULL", companyID).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
