package domain

import "time"

// EntryStatus labels a timesheet entry's place in the approval workflow.
// The conventional values are listed below, but the status column is an open
// string: the raw status setter stores whatever the caller supplies.
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
)

// TimesheetEntry is one employee's weekly hour submission. EmployeeName is a
// free-text identifier matched purely by string equality, not a foreign key.
// Daily hour fields are independent integers; TotalHours is caller-supplied
// and never derived from them.
type TimesheetEntry struct {
	ID            string
	EmployeeName  string
	WeekStart     time.Time
	WeekEnd       time.Time
	Status        EntryStatus
	TotalHours    int
	SubmittedDate time.Time
	Mon           int
	Tue           int
	Wed           int
	Thu           int
	Fri           int
	Sat           int
	Sun           int
	Comments      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
