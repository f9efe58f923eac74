package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PayTypeMonthly = "monthly"
	PayTypeHourly  = "hourly"
)

// Employee is the HR master record as payroll sees it. BaseSalary is the
// monthly salary for monthly staff and the hourly rate for hourly staff.
type Employee struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	BranchID           *uuid.UUID      `gorm:"type:uuid;index"`
	FullName           string          `gorm:"column:full_name"`
	PayType            string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	BaseSalary         decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	LunchAllowance     decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	TransportAllowance decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	PhoneAllowance     decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	OtherAllowance     decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	KPITarget          decimal.Decimal `gorm:"column:kpi_target;type:numeric;not null;default:0"`
	DependentsCount    int             `gorm:"not null;default:0"`
	IsActive           bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) BranchIDString() *string {
	if e.BranchID == nil {
		return nil
	}
	v := e.BranchID.String()
	return &v
}
