package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusOnTime     = "ontime"
	StatusLate       = "late"
	StatusEarlyLeave = "early_leave"
	StatusAbsent     = "absent"
	StatusRejected   = "rejected"
)

// Attendance is one check-in/out event. Several rows may share a calendar
// date (split shifts).
type Attendance struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index:idx_attendances_employee_check_in,priority:1"`
	EmployeeID    uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index:idx_attendances_employee_check_in,priority:2"`
	CheckIn       *time.Time      `gorm:"column:check_in;type:timestamptz;index:idx_attendances_employee_check_in,priority:3"`
	CheckOut      *time.Time      `gorm:"column:check_out;type:timestamptz"`
	HoursWorked   decimal.Decimal `gorm:"column:hours_worked;type:numeric(6,2);not null"`
	OvertimeHours decimal.Decimal `gorm:"column:overtime_hours;type:numeric(6,2);not null"`
	Status        string          `gorm:"column:status;type:varchar(20);not null"`
	Notes         *string         `gorm:"column:notes;type:text"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
