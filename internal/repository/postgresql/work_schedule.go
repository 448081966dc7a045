package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const workScheduleColumns = `id, name, morning_start, morning_end, afternoon_start, afternoon_end,
	tolerance_minutes, work_days, is_default, created_at, updated_at, deleted_at`

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

func scanWorkSchedule(row pgx.Row) (schedule.ScheduleDefinition, error) {
	var (
		ws                         schedule.ScheduleDefinition
		mStart, mEnd, aStart, aEnd pgtype.Time
	)
	err := row.Scan(&ws.ID, &ws.Name, &mStart, &mEnd, &aStart, &aEnd,
		&ws.ToleranceMinutes, &ws.WorkDays, &ws.IsDefault, &ws.CreatedAt, &ws.UpdatedAt, &ws.DeletedAt)
	if err != nil {
		return schedule.ScheduleDefinition{}, err
	}
	ws.MorningStart = *timeValue(mStart)
	ws.MorningEnd = *timeValue(mEnd)
	ws.AfternoonStart = *timeValue(aStart)
	ws.AfternoonEnd = *timeValue(aEnd)
	return ws, nil
}

func (w *workScheduleRepositoryImpl) scheduleArgs(ws schedule.ScheduleDefinition) []interface{} {
	workDays := ws.WorkDays
	if len(workDays) == 0 {
		workDays = schedule.DefaultWorkDays
	}
	return []interface{}{
		ws.ID, ws.Name,
		timeParam(&ws.MorningStart), timeParam(&ws.MorningEnd),
		timeParam(&ws.AfternoonStart), timeParam(&ws.AfternoonEnd),
		ws.ToleranceMinutes, workDays, ws.IsDefault,
	}
}

func translateScheduleError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return schedule.ErrWorkScheduleNotFound
	case isConstraintViolation(err, "work_schedules_name_key"):
		return schedule.ErrWorkScheduleNameExists
	}
	return err
}

// Create implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.ScheduleDefinition) (schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_schedules (id, name, morning_start, morning_end, afternoon_start, afternoon_end,
			tolerance_minutes, work_days, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + workScheduleColumns

	created, err := scanWorkSchedule(q.QueryRow(ctx, query, w.scheduleArgs(ws)...))
	if err != nil {
		return schedule.ScheduleDefinition{}, fmt.Errorf("failed to create work schedule: %w", translateScheduleError(err))
	}
	return created, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1 AND deleted_at IS NULL`
	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		return schedule.ScheduleDefinition{}, translateScheduleError(err)
	}
	return ws, nil
}

// GetDefault implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) GetDefault(ctx context.Context) (schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE is_default AND deleted_at IS NULL LIMIT 1`
	ws, err := scanWorkSchedule(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleDefinition{}, schedule.ErrNoDefaultSchedule
		}
		return schedule.ScheduleDefinition{}, fmt.Errorf("failed to get default work schedule: %w", err)
	}
	return ws, nil
}

// GetByIDs implements schedule.WorkScheduleRepository. Deleted schedules are included so that
// historical assignments still resolve.
func (w *workScheduleRepositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, w.db)

	rows, err := q.Query(ctx, `SELECT `+workScheduleColumns+` FROM work_schedules WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedules: %w", err)
	}
	defer rows.Close()

	out := make(map[string]schedule.ScheduleDefinition, len(ids))
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, err
		}
		out[ws.ID] = ws
	}
	return out, rows.Err()
}

// List implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.ScheduleDefinition, int64, error) {
	q := GetQuerier(ctx, w.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	whereClause := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM work_schedules WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work schedules: %w", err)
	}

	sortColumn := "name"
	if filter.SortBy == "created_at" {
		sortColumn = "created_at"
	}
	sortOrder := "ASC"
	if strings.ToUpper(filter.SortOrder) == "DESC" {
		sortOrder = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM work_schedules
		WHERE %s
		ORDER BY %s %s, id
		LIMIT $%d OFFSET $%d
	`, workScheduleColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	schedules := []schedule.ScheduleDefinition{}
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, 0, err
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

// Update implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) Update(ctx context.Context, ws schedule.ScheduleDefinition) (schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_schedules
		SET name = $2, morning_start = $3, morning_end = $4, afternoon_start = $5, afternoon_end = $6,
			tolerance_minutes = $7, work_days = $8, is_default = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + workScheduleColumns

	updated, err := scanWorkSchedule(q.QueryRow(ctx, query, w.scheduleArgs(ws)...))
	if err != nil {
		return schedule.ScheduleDefinition{}, translateScheduleError(err)
	}
	return updated, nil
}

// ClearDefault implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) ClearDefault(ctx context.Context, exceptID string) error {
	q := GetQuerier(ctx, w.db)

	_, err := q.Exec(ctx, `
		UPDATE work_schedules SET is_default = FALSE, updated_at = NOW()
		WHERE is_default AND id <> $1
	`, exceptID)
	if err != nil {
		return fmt.Errorf("failed to clear default work schedule: %w", err)
	}
	return nil
}

// SoftDelete implements schedule.WorkScheduleRepository. The name is released for reuse.
func (w *workScheduleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `
		UPDATE work_schedules SET deleted_at = NOW(), is_default = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}
	return nil
}
