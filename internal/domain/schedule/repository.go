package schedule

import (
	"context"
	"time"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, workSchedule ScheduleDefinition) (ScheduleDefinition, error)
	GetByID(ctx context.Context, id string) (ScheduleDefinition, error)
	GetDefault(ctx context.Context) (ScheduleDefinition, error)
	List(ctx context.Context, filter WorkScheduleFilter) ([]ScheduleDefinition, int64, error)
	Update(ctx context.Context, workSchedule ScheduleDefinition) (ScheduleDefinition, error)
	ClearDefault(ctx context.Context, exceptID string) error
	SoftDelete(ctx context.Context, id string) error
	// GetByIDs loads every schedule referenced by a batch of assignments.
	GetByIDs(ctx context.Context, ids []string) (map[string]ScheduleDefinition, error)
}

type EmployeeScheduleAssignmentRepository interface {
	Create(ctx context.Context, assignment EmployeeScheduleAssignment) (EmployeeScheduleAssignment, error)
	GetByID(ctx context.Context, id string) (EmployeeScheduleAssignment, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeScheduleAssignment, error)
	// GetActive returns the assignment covering date, or nil when there is none.
	GetActive(ctx context.Context, employeeID string, date time.Time) (*EmployeeScheduleAssignment, error)
	// GetInRange returns assignments of the employees intersecting [start, end].
	GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]EmployeeScheduleAssignment, error)
	Delete(ctx context.Context, id string) error
}
