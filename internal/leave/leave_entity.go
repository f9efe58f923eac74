package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type LeaveType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsPaid    bool      `gorm:"not null"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveRequest struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates,priority:1"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates,priority:2"`
	LeaveTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	StartDate   time.Time       `gorm:"type:date;not null;index:idx_leave_requests_employee_dates,priority:3"`
	EndDate     time.Time       `gorm:"type:date;not null"`
	TotalDays   decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	Status      string          `gorm:"type:varchar(20);not null"`
	Reason      string          `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
