package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday excludes a date from standard work days. A recurring holiday
// matches its month and day in every year. A nil CompanyID applies to
// every tenant.
type Holiday struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID   *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Date        time.Time  `gorm:"type:date;not null;index" json:"date"`
	Name        string     `gorm:"type:varchar(150);not null" json:"name"`
	IsRecurring bool       `gorm:"not null" json:"is_recurring"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
