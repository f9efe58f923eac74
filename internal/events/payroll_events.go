package events

import "time"

const (
	PayrollLifecycleTopic     = "hr.payroll.lifecycle.v1"
	PayrollBulkRequestedTopic = "hr.payroll.bulk.requested.v1"

	PayrollFinalizedEventType     = "payroll.finalized"
	PayrollUnfinalizedEventType   = "payroll.unfinalized"
	PayrollBulkRequestedEventType = "payroll.bulk_requested"
)

// PayrollLifecycleEvent is published when a month is finalized or
// unfinalized for a set of employees.
type PayrollLifecycleEvent struct {
	EventType   string    `json:"event_type"`
	CompanyID   string    `json:"company_id"`
	Month       string    `json:"month"`
	EmployeeIDs []string  `json:"employee_ids"`
	Affected    int64     `json:"affected"`
	ActorID     string    `json:"actor_id"`
	ActorName   string    `json:"actor_name,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PayrollBulkRequestedEvent asks the consumer to calculate and save a
// month for every active employee, optionally limited to one branch.
type PayrollBulkRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	CompanyID   string    `json:"company_id"`
	Month       string    `json:"month"`
	BranchID    *string   `json:"branch_id,omitempty"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
