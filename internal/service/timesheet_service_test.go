package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
)

func newTimesheetServiceForTest() (*TimesheetService, *timesheetRepoFake, events.Dispatcher) {
	repo := newTimesheetRepoFake()
	dispatcher := events.NewInMemoryDispatcher()
	return NewTimesheetService(repo, dispatcher), repo, dispatcher
}

func sampleEntry(name string, weekStart time.Time) *domain.TimesheetEntry {
	return &domain.TimesheetEntry{
		EmployeeName:  name,
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 6),
		Status:        domain.EntryStatusPending,
		TotalHours:    40,
		SubmittedDate: weekStart.AddDate(0, 0, 7),
		Mon:           8, Tue: 8, Wed: 8, Thu: 8, Fri: 8,
		Comments: "regular week",
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}

func TestCreateEntry_AssignsID(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()

	created, err := svc.CreateEntry(context.Background(), sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.EntryStatusPending, created.Status)
}

func TestCreateEntry_DuplicateWeekRejected(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()
	ctx := context.Background()
	week := mustDate(t, "2024-01-01")

	_, err := svc.CreateEntry(ctx, sampleEntry("Alice", week))
	require.NoError(t, err)

	_, err = svc.CreateEntry(ctx, sampleEntry("Alice", week))
	requireDomainCode(t, err, "VALIDATION_FAILED")

	// a different employee may submit for the same week
	_, err = svc.CreateEntry(ctx, sampleEntry("Bob", week))
	assert.NoError(t, err)

	// and the same employee may submit for another week
	_, err = svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-08")))
	assert.NoError(t, err)
}

func TestCreateEntry_NoTotalHoursRecomputation(t *testing.T) {
	svc, repo, _ := newTimesheetServiceForTest()

	entry := sampleEntry("Alice", mustDate(t, "2024-01-01"))
	entry.TotalHours = 99 // deliberately inconsistent with the daily fields

	created, err := svc.CreateEntry(context.Background(), entry)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, stored.TotalHours)
}

func TestGetEntry_NotFound(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()

	_, err := svc.GetEntry(context.Background(), "missing")
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestUpdateEntry_OverwritesEveryField(t *testing.T) {
	svc, repo, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)

	replacement := sampleEntry("Alicia", mustDate(t, "2024-02-05"))
	replacement.Status = domain.EntryStatusApproved
	replacement.TotalHours = 32
	replacement.Fri = 0
	replacement.Comments = "short week"

	updated, err := svc.UpdateEntry(ctx, created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alicia", updated.EmployeeName)
	assert.Equal(t, domain.EntryStatusApproved, updated.Status)
	assert.Equal(t, 32, updated.TotalHours)
	assert.Equal(t, "short week", updated.Comments)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.WeekStart.Equal(mustDate(t, "2024-02-05")))
}

func TestUpdateEntry_NotFound(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()

	_, err := svc.UpdateEntry(context.Background(), "missing", sampleEntry("Alice", mustDate(t, "2024-01-01")))
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestUpdateEntry_DoesNotRecheckWeeklyUniqueness(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	first, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)
	second, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-08")))
	require.NoError(t, err)

	// full-overwrite semantics: moving the second entry onto the first
	// entry's week passes the service layer untouched
	replacement := sampleEntry("Alice", mustDate(t, "2024-01-01"))
	updated, err := svc.UpdateEntry(ctx, second.ID, replacement)
	require.NoError(t, err)
	assert.True(t, updated.WeekStart.Equal(first.WeekStart))
}

func TestApproveThenReject_NoTransitionGuard(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)

	approved, err := svc.ApproveEntry(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusApproved, approved.Status)

	rejected, err := svc.RejectEntry(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusRejected, rejected.Status)
}

func TestUpdateStatus_StoresArbitraryValueVerbatim(t *testing.T) {
	svc, repo, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, domain.EntryStatus("banana"))
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatus("banana"), updated.Status)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatus("banana"), stored.Status)
}

func TestStatusOperations_NotFound(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	_, err := svc.ApproveEntry(ctx, "missing")
	requireDomainCode(t, err, "NOT_FOUND")

	_, err = svc.RejectEntry(ctx, "missing")
	requireDomainCode(t, err, "NOT_FOUND")

	_, err = svc.UpdateStatus(ctx, "missing", domain.EntryStatusPending)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestDeleteEntry_NonExistentIsNoOp(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()

	assert.NoError(t, svc.DeleteEntry(context.Background(), "missing"))
}

func TestDeleteEntry_RemovesEntry(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, created.ID))

	_, err = svc.GetEntry(ctx, created.ID)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestFindQueries_ExactMatch(t *testing.T) {
	svc, _, _ := newTimesheetServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)
	approved, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-08")))
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, sampleEntry("Bob", mustDate(t, "2024-01-01")))
	require.NoError(t, err)

	_, err = svc.ApproveEntry(ctx, approved.ID)
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alice, err := svc.FindByEmployeeName(ctx, "Alice")
	require.NoError(t, err)
	assert.Len(t, alice, 2)

	// case-sensitive: no normalization
	lower, err := svc.FindByEmployeeName(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, lower)

	aliceApproved, err := svc.FindByEmployeeNameAndStatus(ctx, "Alice", domain.EntryStatusApproved)
	require.NoError(t, err)
	require.Len(t, aliceApproved, 1)
	assert.Equal(t, approved.ID, aliceApproved[0].ID)
}

func TestStatusChange_PublishesEvent(t *testing.T) {
	svc, _, dispatcher := newTimesheetServiceForTest()
	ctx := context.Background()

	var received []events.Event
	dispatcher.Subscribe(events.EventEntryStatusChanged, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	created, err := svc.CreateEntry(ctx, sampleEntry("Alice", mustDate(t, "2024-01-01")))
	require.NoError(t, err)

	_, err = svc.ApproveEntry(ctx, created.ID)
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, created.ID, received[0].EntryID)
	payload, ok := received[0].Payload.(events.EntryStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.EntryStatusPending, payload.OldStatus)
	assert.Equal(t, domain.EntryStatusApproved, payload.NewStatus)
}
