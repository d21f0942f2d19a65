package events

import (
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntrySubmitted     EventType = "entry_submitted"
	EventEntryStatusChanged EventType = "entry_status_changed"
	EventEntryDeleted       EventType = "entry_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntryID   string      `json:"entry_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EntrySubmittedPayload payload.
type EntrySubmittedPayload struct {
	EmployeeName string             `json:"employee_name"`
	WeekStart    time.Time          `json:"week_start"`
	TotalHours   int                `json:"total_hours"`
	Status       domain.EntryStatus `json:"status"`
}

// EntryStatusChangedPayload payload.
type EntryStatusChangedPayload struct {
	EmployeeName string             `json:"employee_name"`
	OldStatus    domain.EntryStatus `json:"old_status"`
	NewStatus    domain.EntryStatus `json:"new_status"`
}

// EntryDeletedPayload payload.
type EntryDeletedPayload struct {
	EntryID string `json:"entry_id"`
}
