package events

import "time"

const LeaveDecidedTopic = "hris.leave.decision.v1"

// LeaveDecidedEvent is emitted for every terminal decision on a leave
// request, approved or rejected.
type LeaveDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	EmployeeID  string    `json:"employee_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	Days        int       `json:"days"`
	Status      string    `json:"status"`
	DecidedBy   string    `json:"decided_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
