package salaryconfig

import (
	"time"

	"github.com/google/uuid"
)

// SalaryConfig is one row of the pay-type scoped key/value table. Values
// are numeric strings; at most one active row exists per (pay_type, key).
type SalaryConfig struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_config_active,where:is_active" json:"company_id"`
	PayType     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_salary_config_active,where:is_active" json:"pay_type"`
	ConfigKey   string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_salary_config_active,where:is_active" json:"config_key"`
	ConfigValue string    `gorm:"type:varchar(60);not null" json:"config_value"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SalaryConfig) TableName() string {
	return "salary_configs"
}
