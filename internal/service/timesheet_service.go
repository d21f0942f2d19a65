package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/repository"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

// TimesheetService coordinates the entry lifecycle: submission with the
// one-entry-per-employee-per-week check, full-record updates, the approval
// workflow and the read queries.
type TimesheetService struct {
	entries    repository.TimesheetRepository
	dispatcher events.Dispatcher
}

// NewTimesheetService constructs the service.
func NewTimesheetService(entries repository.TimesheetRepository, dispatcher events.Dispatcher) *TimesheetService {
	return &TimesheetService{entries: entries, dispatcher: dispatcher}
}

// CreateEntry persists a new submission as-is. No field normalization takes
// place and TotalHours is never recomputed from the daily fields. A second
// entry for the same (employeeName, weekStart) fails validation.
func (s *TimesheetService) CreateEntry(ctx context.Context, entry *domain.TimesheetEntry) (*domain.TimesheetEntry, error) {
	existing, err := s.entries.ListByEmployeeNameAndWeekStart(ctx, entry.EmployeeName, entry.WeekStart)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewValidationError("you already entered the data for this week", map[string]any{
			"employee_name": entry.EmployeeName,
			"week_start":    entry.WeekStart.Format("2006-01-02"),
		})
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventEntrySubmitted,
		EntryID: entry.ID,
		Payload: events.EntrySubmittedPayload{
			EmployeeName: entry.EmployeeName,
			WeekStart:    entry.WeekStart,
			TotalHours:   entry.TotalHours,
			Status:       entry.Status,
		},
	})
	return entry, nil
}

// GetEntry fetches an entry by id.
func (s *TimesheetService) GetEntry(ctx context.Context, id string) (*domain.TimesheetEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("timesheet entry", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry overwrites every field of the stored entry with the
// replacement's values, including status, dates and hours. The weekly
// uniqueness invariant is not re-checked here; the storage constraint is the
// only guard when the replacement moves weekStart.
func (s *TimesheetService) UpdateEntry(ctx context.Context, id string, replacement *domain.TimesheetEntry) (*domain.TimesheetEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("timesheet entry", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}

	entry.EmployeeName = replacement.EmployeeName
	entry.WeekStart = replacement.WeekStart
	entry.WeekEnd = replacement.WeekEnd
	entry.Status = replacement.Status
	entry.TotalHours = replacement.TotalHours
	entry.SubmittedDate = replacement.SubmittedDate
	entry.Mon = replacement.Mon
	entry.Tue = replacement.Tue
	entry.Wed = replacement.Wed
	entry.Thu = replacement.Thu
	entry.Fri = replacement.Fri
	entry.Sat = replacement.Sat
	entry.Sun = replacement.Sun
	entry.Comments = replacement.Comments

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ApproveEntry sets the status to the fixed literal "approved".
func (s *TimesheetService) ApproveEntry(ctx context.Context, id string) (*domain.TimesheetEntry, error) {
	return s.setStatus(ctx, id, domain.EntryStatusApproved)
}

// RejectEntry sets the status to the fixed literal "rejected".
func (s *TimesheetService) RejectEntry(ctx context.Context, id string) (*domain.TimesheetEntry, error) {
	return s.setStatus(ctx, id, domain.EntryStatusRejected)
}

// UpdateStatus stores the caller-supplied status verbatim. There is no
// transition guard and no validation against the conventional values; the
// permissiveness is intentional.
func (s *TimesheetService) UpdateStatus(ctx context.Context, id string, status domain.EntryStatus) (*domain.TimesheetEntry, error) {
	return s.setStatus(ctx, id, status)
}

func (s *TimesheetService) setStatus(ctx context.Context, id string, status domain.EntryStatus) (*domain.TimesheetEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("timesheet entry", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}

	oldStatus := entry.Status
	entry.Status = status
	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventEntryStatusChanged,
		EntryID: entry.ID,
		Payload: events.EntryStatusChangedPayload{
			EmployeeName: entry.EmployeeName,
			OldStatus:    oldStatus,
			NewStatus:    status,
		},
	})
	return entry, nil
}

// DeleteEntry removes the entry unconditionally. Deleting a non-existent id
// is a no-op.
func (s *TimesheetService) DeleteEntry(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventEntryDeleted,
		EntryID: id,
		Payload: events.EntryDeletedPayload{EntryID: id},
	})
	return nil
}

// ListAll returns every entry.
func (s *TimesheetService) ListAll(ctx context.Context) ([]domain.TimesheetEntry, error) {
	return s.entries.ListAll(ctx)
}

// FindByEmployeeName returns entries matching the name exactly.
func (s *TimesheetService) FindByEmployeeName(ctx context.Context, name string) ([]domain.TimesheetEntry, error) {
	return s.entries.ListByEmployeeName(ctx, name)
}

// FindByEmployeeNameAndStatus returns entries matching both fields exactly.
func (s *TimesheetService) FindByEmployeeNameAndStatus(ctx context.Context, name string, status domain.EntryStatus) ([]domain.TimesheetEntry, error) {
	return s.entries.ListByEmployeeNameAndStatus(ctx, name, status)
}

func (s *TimesheetService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
