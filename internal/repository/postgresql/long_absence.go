package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const longAbsenceColumns = `la.id, la.employee_id, la.leave_type, la.start_date, la.end_date, la.reason,
	la.created_at, la.updated_at, e.full_name`

const longAbsenceFrom = `long_absences la LEFT JOIN employees e ON e.id = la.employee_id`

type longAbsenceRepositoryImpl struct {
	db *database.DB
}

func NewLongAbsenceRepository(db *database.DB) leave.LongAbsenceRepository {
	return &longAbsenceRepositoryImpl{db: db}
}

func scanLongAbsence(row pgx.Row) (leave.LongAbsence, error) {
	var a leave.LongAbsence
	err := row.Scan(&a.ID, &a.EmployeeID, &a.LeaveType, &a.StartDate, &a.EndDate, &a.Reason,
		&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName)
	return a, err
}

func collectLongAbsences(rows pgx.Rows) ([]leave.LongAbsence, error) {
	defer rows.Close()

	absences := []leave.LongAbsence{}
	for rows.Next() {
		a, err := scanLongAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	return absences, rows.Err()
}

// Create implements leave.LongAbsenceRepository.
func (l *longAbsenceRepositoryImpl) Create(ctx context.Context, absence leave.LongAbsence) (leave.LongAbsence, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO long_absences (id, employee_id, leave_type, start_date, end_date, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		absence.ID, absence.EmployeeID, absence.LeaveType, absence.StartDate, absence.EndDate, absence.Reason,
	).Scan(&absence.CreatedAt, &absence.UpdatedAt)
	if err != nil {
		if isConstraintViolation(err, "long_absences_no_overlap") {
			return leave.LongAbsence{}, leave.ErrOverlappingAbsence
		}
		return leave.LongAbsence{}, fmt.Errorf("failed to create absence: %w", err)
	}
	return absence, nil
}

// GetByID implements leave.LongAbsenceRepository.
func (l *longAbsenceRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LongAbsence, error) {
	q := GetQuerier(ctx, l.db)

	a, err := scanLongAbsence(q.QueryRow(ctx, `SELECT `+longAbsenceColumns+` FROM `+longAbsenceFrom+` WHERE la.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LongAbsence{}, leave.ErrLongAbsenceNotFound
		}
		return leave.LongAbsence{}, fmt.Errorf("failed to get absence: %w", err)
	}
	return a, nil
}

// List implements leave.LongAbsenceRepository.
func (l *longAbsenceRepositoryImpl) List(ctx context.Context, filter leave.LongAbsenceFilter) ([]leave.LongAbsence, int64, error) {
	q := GetQuerier(ctx, l.db)

	// Build WHERE conditions
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("la.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		conditions = append(conditions, fmt.Sprintf("la.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}
	// A period filter keeps every absence that intersects it.
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("la.end_date >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("la.start_date <= $%d::date", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+longAbsenceFrom+" WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count absences: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY la.start_date DESC, la.id
		LIMIT $%d OFFSET $%d
	`, longAbsenceColumns, longAbsenceFrom, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list absences: %w", err)
	}
	absences, err := collectLongAbsences(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan absences: %w", err)
	}
	return absences, total, nil
}

// ExistsOverlapping implements leave.LongAbsenceRepository.
func (l *longAbsenceRepositoryImpl) ExistsOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM long_absences
			WHERE employee_id = $1 AND start_date <= $3::date AND end_date >= $2::date
		)`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping absences: %w", err)
	}
	return exists, nil
}

// GetInRange implements leave.LongAbsenceRepository.
func (l *longAbsenceRepositoryImpl) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]leave.LongAbsence, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + longAbsenceColumns + `
		FROM ` + longAbsenceFrom + `
		WHERE la.employee_id = ANY($1) AND la.start_date <= $3::date AND la.end_date >= $2::date
		ORDER BY la.employee_id, la.start_date`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get absences in range: %w", err)
	}
	return collectLongAbsences(rows)
}

// Delete implements leave.LongAbsenceRepository.
func (l *longAbsenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM long_absences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLongAbsenceNotFound
	}
	return nil
}
