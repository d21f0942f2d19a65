package dto

import (
	"fmt"
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// EntryRequest is the payload for creating or fully replacing an entry.
// Dates are calendar days in YYYY-MM-DD form. Status is passed through
// verbatim; callers are expected to supply the initial value.
type EntryRequest struct {
	EmployeeName  string `json:"employeeName"`
	WeekStart     string `json:"weekStart"`
	WeekEnd       string `json:"weekEnd"`
	Status        string `json:"status"`
	TotalHours    int    `json:"totalHours"`
	SubmittedDate string `json:"submittedDate"`
	Mon           int    `json:"mon"`
	Tue           int    `json:"tue"`
	Wed           int    `json:"wed"`
	Thu           int    `json:"thu"`
	Fri           int    `json:"fri"`
	Sat           int    `json:"sat"`
	Sun           int    `json:"sun"`
	Comments      string `json:"comments"`
}

// ToDomain parses the request into a domain entry.
func (r EntryRequest) ToDomain() (*domain.TimesheetEntry, error) {
	weekStart, err := parseDate("weekStart", r.WeekStart)
	if err != nil {
		return nil, err
	}
	weekEnd, err := parseDate("weekEnd", r.WeekEnd)
	if err != nil {
		return nil, err
	}
	submitted, err := parseDate("submittedDate", r.SubmittedDate)
	if err != nil {
		return nil, err
	}

	return &domain.TimesheetEntry{
		EmployeeName:  r.EmployeeName,
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Status:        domain.EntryStatus(r.Status),
		TotalHours:    r.TotalHours,
		SubmittedDate: submitted,
		Mon:           r.Mon,
		Tue:           r.Tue,
		Wed:           r.Wed,
		Thu:           r.Thu,
		Fri:           r.Fri,
		Sat:           r.Sat,
		Sun:           r.Sun,
		Comments:      r.Comments,
	}, nil
}

// StatusUpdateRequest carries the raw status value to store.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// EntryResponse mirrors the stored entry.
type EntryResponse struct {
	ID            string `json:"id"`
	EmployeeName  string `json:"employeeName"`
	WeekStart     string `json:"weekStart"`
	WeekEnd       string `json:"weekEnd"`
	Status        string `json:"status"`
	TotalHours    int    `json:"totalHours"`
	SubmittedDate string `json:"submittedDate"`
	Mon           int    `json:"mon"`
	Tue           int    `json:"tue"`
	Wed           int    `json:"wed"`
	Thu           int    `json:"thu"`
	Fri           int    `json:"fri"`
	Sat           int    `json:"sat"`
	Sun           int    `json:"sun"`
	Comments      string `json:"comments"`
}

// EntryResponseFrom projects a domain entry.
func EntryResponseFrom(entry *domain.TimesheetEntry) EntryResponse {
	return EntryResponse{
		ID:            entry.ID,
		EmployeeName:  entry.EmployeeName,
		WeekStart:     entry.WeekStart.Format(time.DateOnly),
		WeekEnd:       entry.WeekEnd.Format(time.DateOnly),
		Status:        string(entry.Status),
		TotalHours:    entry.TotalHours,
		SubmittedDate: entry.SubmittedDate.Format(time.DateOnly),
		Mon:           entry.Mon,
		Tue:           entry.Tue,
		Wed:           entry.Wed,
		Thu:           entry.Thu,
		Fri:           entry.Fri,
		Sat:           entry.Sat,
		Sun:           entry.Sun,
		Comments:      entry.Comments,
	}
}

// EntryListResponseFrom projects a slice of entries.
func EntryListResponseFrom(entries []domain.TimesheetEntry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, EntryResponseFrom(&entries[i]))
	}
	return result
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", field, err)
	}
	return parsed, nil
}
