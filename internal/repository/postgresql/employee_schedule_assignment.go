package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const assignmentColumns = `a.id, a.employee_id, a.work_schedule_id, a.start_date, a.end_date, a.created_at, a.updated_at, ws.name`

type employeeScheduleAssignmentRepository struct {
	db *database.DB
}

func NewEmployeeScheduleAssignmentRepository(db *database.DB) schedule.EmployeeScheduleAssignmentRepository {
	return &employeeScheduleAssignmentRepository{db: db}
}

func scanAssignment(row pgx.Row) (schedule.EmployeeScheduleAssignment, error) {
	var a schedule.EmployeeScheduleAssignment
	err := row.Scan(&a.ID, &a.EmployeeID, &a.WorkScheduleID, &a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt, &a.WorkScheduleName)
	return a, err
}

func (e *employeeScheduleAssignmentRepository) queryAssignments(ctx context.Context, where string, args ...interface{}) ([]schedule.EmployeeScheduleAssignment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_schedule_assignments a
		JOIN work_schedules ws ON ws.id = a.work_schedule_id
		WHERE ` + where + `
		ORDER BY a.employee_id, a.start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule assignments: %w", err)
	}
	defer rows.Close()

	assignments := []schedule.EmployeeScheduleAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Create implements schedule.EmployeeScheduleAssignmentRepository.
func (e *employeeScheduleAssignmentRepository) Create(ctx context.Context, assignment schedule.EmployeeScheduleAssignment) (schedule.EmployeeScheduleAssignment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employee_schedule_assignments (id, employee_id, work_schedule_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		assignment.ID, assignment.EmployeeID, assignment.WorkScheduleID, assignment.StartDate, assignment.EndDate,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		if isConstraintViolation(err, "employee_schedule_assignments_no_overlap") {
			return schedule.EmployeeScheduleAssignment{}, schedule.ErrOverlappingScheduleAssignment
		}
		return schedule.EmployeeScheduleAssignment{}, fmt.Errorf("failed to create schedule assignment: %w", err)
	}
	return assignment, nil
}

// GetByID implements schedule.EmployeeScheduleAssignmentRepository.
func (e *employeeScheduleAssignmentRepository) GetByID(ctx context.Context, id string) (schedule.EmployeeScheduleAssignment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_schedule_assignments a
		JOIN work_schedules ws ON ws.id = a.work_schedule_id
		WHERE a.id = $1`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.EmployeeScheduleAssignment{}, schedule.ErrEmployeeScheduleAssignmentNotFound
		}
		return schedule.EmployeeScheduleAssignment{}, fmt.Errorf("failed to get schedule assignment: %w", err)
	}
	return a, nil
}

// GetByEmployeeID implements schedule.EmployeeScheduleAssignmentRepository.
func (e *employeeScheduleAssignmentRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.EmployeeScheduleAssignment, error) {
	return e.queryAssignments(ctx, "a.employee_id = $1", employeeID)
}

// GetActive implements schedule.EmployeeScheduleAssignmentRepository.
func (e *employeeScheduleAssignmentRepository) GetActive(ctx context.Context, employeeID string, date time.Time) (*schedule.EmployeeScheduleAssignment, error) {
	assignments, err := e.queryAssignments(ctx,
		"a.employee_id = $1 AND a.start_date <= $2::date AND (a.end_date IS NULL OR a.end_date >= $2::date)",
		employeeID, date)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, nil
	}
	return &assignments[len(assignments)-1], nil
}

// GetInRange implements schedule.EmployeeScheduleAssignmentRepository.
func (e *employeeScheduleAssignmentRepository) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]schedule.EmployeeScheduleAssignment, error) {
	return e.queryAssignments(ctx,
		"a.employee_id = ANY($1) AND a.start_date <= $3::date AND (a.end_date IS NULL OR a.end_date >= $2::date)",
		employeeIDs, start, end)
}

// Delete implements schedule.EmployeeScheduleAssignmentRepository.
func (e *employeeScheduleAssignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_schedule_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEmployeeScheduleAssignmentNotFound
	}
	return nil
}
