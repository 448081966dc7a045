package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// Work Schedule
	CreateWorkSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	GetWorkSchedule(ctx context.Context, id string) (WorkScheduleResponse, error)
	ListWorkSchedules(ctx context.Context, filter WorkScheduleFilter) (ListWorkScheduleResponse, error)
	UpdateWorkSchedule(ctx context.Context, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)
	DeleteWorkSchedule(ctx context.Context, id string) error

	// Employee Schedule Assignment
	AssignSchedule(ctx context.Context, req AssignScheduleRequest) (AssignScheduleResponse, error)
	ListEmployeeAssignments(ctx context.Context, employeeID string) ([]AssignScheduleResponse, error)
	DeleteAssignment(ctx context.Context, id string) error

	// GetActiveScheduleForEmployee resolves the assigned schedule for date, falling back to the default one.
	GetActiveScheduleForEmployee(ctx context.Context, employeeID string, date time.Time) (WorkScheduleResponse, error)
}

