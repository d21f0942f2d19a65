package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

func TestEntryRequest_ToDomain(t *testing.T) {
	req := EntryRequest{
		EmployeeName:  "Alice",
		WeekStart:     "2024-01-01",
		WeekEnd:       "2024-01-07",
		Status:        "pending",
		TotalHours:    40,
		SubmittedDate: "2024-01-08",
		Mon:           8, Tue: 8, Wed: 8, Thu: 8, Fri: 8,
		Comments: "regular week",
	}

	entry, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "Alice", entry.EmployeeName)
	assert.Equal(t, domain.EntryStatus("pending"), entry.Status)
	assert.True(t, entry.WeekStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, entry.WeekEnd.Equal(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
}

func TestEntryRequest_ToDomainRejectsMalformedDates(t *testing.T) {
	req := EntryRequest{WeekStart: "01/01/2024", WeekEnd: "2024-01-07", SubmittedDate: "2024-01-08"}
	_, err := req.ToDomain()
	assert.Error(t, err)
}

func TestEntryResponseFrom_FormatsDates(t *testing.T) {
	entry := &domain.TimesheetEntry{
		ID:            "entry-1",
		EmployeeName:  "Alice",
		WeekStart:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WeekEnd:       time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		Status:        domain.EntryStatusApproved,
		SubmittedDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
	}

	resp := EntryResponseFrom(entry)
	assert.Equal(t, "2024-01-01", resp.WeekStart)
	assert.Equal(t, "2024-01-07", resp.WeekEnd)
	assert.Equal(t, "2024-01-08", resp.SubmittedDate)
	assert.Equal(t, "approved", resp.Status)
}
