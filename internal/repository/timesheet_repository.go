package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// TimesheetRepository encapsulates entry persistence with the exact query
// shapes the workflow needs: by id, by employee name, by (name, status) and
// by (name, weekStart). All matches are exact and case-sensitive.
type TimesheetRepository interface {
	Create(ctx context.Context, entry *domain.TimesheetEntry) error
	Update(ctx context.Context, entry *domain.TimesheetEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimesheetEntry, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.TimesheetEntry, error)
	ListByEmployeeName(ctx context.Context, name string) ([]domain.TimesheetEntry, error)
	ListByEmployeeNameAndStatus(ctx context.Context, name string, status domain.EntryStatus) ([]domain.TimesheetEntry, error)
	ListByEmployeeNameAndWeekStart(ctx context.Context, name string, weekStart time.Time) ([]domain.TimesheetEntry, error)
}

type timesheetRepository struct {
	pool *pgxpool.Pool
}

// NewTimesheetRepository instantiates the Postgres-backed repository.
func NewTimesheetRepository(pool *pgxpool.Pool) TimesheetRepository {
	return &timesheetRepository{pool: pool}
}

const entryColumns = `id, employee_name, week_start, week_end, status, total_hours, submitted_date,
               mon, tue, wed, thu, fri, sat, sun, comments, created_at, updated_at`

func (r *timesheetRepository) Create(ctx context.Context, entry *domain.TimesheetEntry) error {
	const query = `
        INSERT INTO timesheet_entries
            (employee_name, week_start, week_end, status, total_hours, submitted_date,
             mon, tue, wed, thu, fri, sat, sun, comments)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		entry.EmployeeName,
		entry.WeekStart,
		entry.WeekEnd,
		entry.Status,
		entry.TotalHours,
		entry.SubmittedDate,
		entry.Mon,
		entry.Tue,
		entry.Wed,
		entry.Thu,
		entry.Fri,
		entry.Sat,
		entry.Sun,
		entry.Comments,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *timesheetRepository) Update(ctx context.Context, entry *domain.TimesheetEntry) error {
	const query = `
        UPDATE timesheet_entries SET employee_name=$1, week_start=$2, week_end=$3, status=$4,
            total_hours=$5, submitted_date=$6, mon=$7, tue=$8, wed=$9, thu=$10, fri=$11,
            sat=$12, sun=$13, comments=$14, updated_at=NOW()
        WHERE id=$15`
	cmd, err := r.pool.Exec(ctx, query,
		entry.EmployeeName,
		entry.WeekStart,
		entry.WeekEnd,
		entry.Status,
		entry.TotalHours,
		entry.SubmittedDate,
		entry.Mon,
		entry.Tue,
		entry.Wed,
		entry.Thu,
		entry.Fri,
		entry.Sat,
		entry.Sun,
		entry.Comments,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, id string) (*domain.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE id=$1`

	var entry domain.TimesheetEntry
	if err := r.pool.QueryRow(ctx, query, id).Scan(entryFields(&entry)...); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes an entry by id. Deleting a non-existent id is a no-op.
func (r *timesheetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM timesheet_entries WHERE id=$1`, id)
	return err
}

func (r *timesheetRepository) ListAll(ctx context.Context) ([]domain.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries ORDER BY week_start DESC, employee_name`
	return r.list(ctx, query)
}

func (r *timesheetRepository) ListByEmployeeName(ctx context.Context, name string) ([]domain.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE employee_name=$1 ORDER BY week_start DESC`
	return r.list(ctx, query, name)
}

func (r *timesheetRepository) ListByEmployeeNameAndStatus(ctx context.Context, name string, status domain.EntryStatus) ([]domain.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE employee_name=$1 AND status=$2 ORDER BY week_start DESC`
	return r.list(ctx, query, name, status)
}

func (r *timesheetRepository) ListByEmployeeNameAndWeekStart(ctx context.Context, name string, weekStart time.Time) ([]domain.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE employee_name=$1 AND week_start=$2`
	return r.list(ctx, query, name, weekStart)
}

func (r *timesheetRepository) list(ctx context.Context, query string, args ...any) ([]domain.TimesheetEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TimesheetEntry
	for rows.Next() {
		var entry domain.TimesheetEntry
		if err := rows.Scan(entryFields(&entry)...); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func entryFields(entry *domain.TimesheetEntry) []any {
	return []any{
		&entry.ID,
		&entry.EmployeeName,
		&entry.WeekStart,
		&entry.WeekEnd,
		&entry.Status,
		&entry.TotalHours,
		&entry.SubmittedDate,
		&entry.Mon,
		&entry.Tue,
		&entry.Wed,
		&entry.Thu,
		&entry.Fri,
		&entry.Sat,
		&entry.Sun,
		&entry.Comments,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	}
}
