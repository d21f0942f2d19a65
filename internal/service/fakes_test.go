package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// In-memory repository fakes mirroring the pgx implementations' absence
// semantics: lookups return pgx.ErrNoRows, Delete is a silent no-op.

type userRepoFake struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{users: make(map[string]*domain.User)}
}

func (f *userRepoFake) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *userRepoFake) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	stored.UpdatedAt = time.Now()
	f.users[user.ID] = &stored
	return nil
}

func (f *userRepoFake) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user := *stored
	return &user, nil
}

func (f *userRepoFake) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.users {
		if stored.Email == email {
			user := *stored
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *userRepoFake) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]domain.User, 0, len(f.users))
	for _, stored := range f.users {
		result = append(result, *stored)
	}
	return result, nil
}

func (f *userRepoFake) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type timesheetRepoFake struct {
	mu      sync.Mutex
	seq     int
	entries map[string]*domain.TimesheetEntry
}

func newTimesheetRepoFake() *timesheetRepoFake {
	return &timesheetRepoFake{entries: make(map[string]*domain.TimesheetEntry)}
}

func (f *timesheetRepoFake) Create(_ context.Context, entry *domain.TimesheetEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	entry.ID = fmt.Sprintf("entry-%d", f.seq)
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	stored := *entry
	f.entries[entry.ID] = &stored
	return nil
}

func (f *timesheetRepoFake) Update(_ context.Context, entry *domain.TimesheetEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[entry.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *entry
	stored.UpdatedAt = time.Now()
	f.entries[entry.ID] = &stored
	return nil
}

func (f *timesheetRepoFake) GetByID(_ context.Context, id string) (*domain.TimesheetEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.entries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	entry := *stored
	return &entry, nil
}

func (f *timesheetRepoFake) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
	return nil
}

func (f *timesheetRepoFake) ListAll(_ context.Context) ([]domain.TimesheetEntry, error) {
	return f.filter(func(*domain.TimesheetEntry) bool { return true }), nil
}

func (f *timesheetRepoFake) ListByEmployeeName(_ context.Context, name string) ([]domain.TimesheetEntry, error) {
	return f.filter(func(e *domain.TimesheetEntry) bool { return e.EmployeeName == name }), nil
}

func (f *timesheetRepoFake) ListByEmployeeNameAndStatus(_ context.Context, name string, status domain.EntryStatus) ([]domain.TimesheetEntry, error) {
	return f.filter(func(e *domain.TimesheetEntry) bool {
		return e.EmployeeName == name && e.Status == status
	}), nil
}

func (f *timesheetRepoFake) ListByEmployeeNameAndWeekStart(_ context.Context, name string, weekStart time.Time) ([]domain.TimesheetEntry, error) {
	return f.filter(func(e *domain.TimesheetEntry) bool {
		return e.EmployeeName == name && e.WeekStart.Equal(weekStart)
	}), nil
}

func (f *timesheetRepoFake) filter(match func(*domain.TimesheetEntry) bool) []domain.TimesheetEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.TimesheetEntry
	for _, stored := range f.entries {
		if match(stored) {
			result = append(result, *stored)
		}
	}
	return result
}
