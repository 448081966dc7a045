package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type scheduleServiceImpl struct {
	runInTx                    postgresql.TxRunner
	workScheduleRepo           schedule.WorkScheduleRepository
	employeeScheduleAssignRepo schedule.EmployeeScheduleAssignmentRepository
	employeeRepo               employee.EmployeeRepository
}

func NewScheduleService(
	runInTx postgresql.TxRunner,
	workScheduleRepo schedule.WorkScheduleRepository,
	employeeScheduleAssignRepo schedule.EmployeeScheduleAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		runInTx:                    runInTx,
		workScheduleRepo:           workScheduleRepo,
		employeeScheduleAssignRepo: employeeScheduleAssignRepo,
		employeeRepo:               employeeRepo,
	}
}

// CreateWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	def := req.ToDefinition()
	def.ID = uuid.Must(uuid.NewV7()).String()

	var created schedule.ScheduleDefinition
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		if def.IsDefault {
			if err := s.workScheduleRepo.ClearDefault(txCtx, def.ID); err != nil {
				return fmt.Errorf("failed to clear default work schedule: %w", err)
			}
		}
		var err error
		created, err = s.workScheduleRepo.Create(txCtx, def)
		return err
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return schedule.NewWorkScheduleResponse(created), nil
}

// GetWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	ws, err := s.workScheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return schedule.NewWorkScheduleResponse(ws), nil
}

// ListWorkSchedules implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListWorkSchedules(ctx context.Context, filter schedule.WorkScheduleFilter) (schedule.ListWorkScheduleResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListWorkScheduleResponse{}, err
	}

	workSchedules, totalCount, err := s.workScheduleRepo.List(ctx, filter)
	if err != nil {
		return schedule.ListWorkScheduleResponse{}, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(workSchedules))
	for _, ws := range workSchedules {
		responses = append(responses, schedule.NewWorkScheduleResponse(ws))
	}

	return schedule.ListWorkScheduleResponse{
		TotalCount:    totalCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    utils.TotalPages(totalCount, filter.Limit),
		Showing:       utils.Showing(filter.Page, filter.Limit, len(responses), totalCount),
		WorkSchedules: responses,
	}, nil
}

// UpdateWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateWorkSchedule(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	existing, err := s.workScheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	if existing.IsDefault && req.IsDefault != nil && !*req.IsDefault {
		return schedule.WorkScheduleResponse{}, schedule.ErrDefaultRequired
	}

	ws := req.Apply(existing)
	if !ws.CheckOrder() {
		return schedule.WorkScheduleResponse{}, schedule.ErrInvalidScheduleOrder
	}

	var updated schedule.ScheduleDefinition
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		if ws.IsDefault && !existing.IsDefault {
			if err := s.workScheduleRepo.ClearDefault(txCtx, ws.ID); err != nil {
				return fmt.Errorf("failed to clear default work schedule: %w", err)
			}
		}
		var err error
		updated, err = s.workScheduleRepo.Update(txCtx, ws)
		return err
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return schedule.NewWorkScheduleResponse(updated), nil
}

// DeleteWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteWorkSchedule(ctx context.Context, id string) error {
	ws, err := s.workScheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ws.IsDefault {
		return schedule.ErrCannotDeleteDefault
	}
	return s.workScheduleRepo.SoftDelete(ctx, id)
}

// AssignSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.AssignScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.AssignScheduleResponse{}, err
	}
	ws, err := s.workScheduleRepo.GetByID(ctx, req.WorkScheduleID)
	if err != nil {
		return schedule.AssignScheduleResponse{}, err
	}

	assignment := schedule.EmployeeScheduleAssignment{
		ID:             uuid.Must(uuid.NewV7()).String(),
		EmployeeID:     req.EmployeeID,
		WorkScheduleID: ws.ID,
	}
	assignment.StartDate, _ = time.Parse("2006-01-02", req.StartDate)
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		assignment.EndDate = &endDate
	}

	var created schedule.EmployeeScheduleAssignment
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.employeeScheduleAssignRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee schedule assignments: %w", err)
		}
		for _, a := range existing {
			if a.Overlaps(assignment) {
				return schedule.ErrOverlappingScheduleAssignment
			}
		}
		created, err = s.employeeScheduleAssignRepo.Create(txCtx, assignment)
		return err
	})
	if err != nil {
		return schedule.AssignScheduleResponse{}, err
	}

	created.WorkScheduleName = &ws.Name
	return schedule.NewAssignScheduleResponse(created), nil
}

// ListEmployeeAssignments implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListEmployeeAssignments(ctx context.Context, employeeID string) ([]schedule.AssignScheduleResponse, error) {
	if employeeID == "" {
		return nil, schedule.ErrEmployeeIDRequired
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	assignments, err := s.employeeScheduleAssignRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee schedule assignments: %w", err)
	}

	responses := make([]schedule.AssignScheduleResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, schedule.NewAssignScheduleResponse(a))
	}
	return responses, nil
}

// DeleteAssignment implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	return s.employeeScheduleAssignRepo.Delete(ctx, id)
}

// GetActiveScheduleForEmployee implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetActiveScheduleForEmployee(ctx context.Context, employeeID string, date time.Time) (schedule.WorkScheduleResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	active, err := s.employeeScheduleAssignRepo.GetActive(ctx, employeeID, date)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get active schedule assignment: %w", err)
	}

	if active == nil {
		ws, err := s.workScheduleRepo.GetDefault(ctx)
		if err != nil {
			return schedule.WorkScheduleResponse{}, err
		}
		return schedule.NewWorkScheduleResponse(ws), nil
	}

	// An assignment keeps its schedule after the schedule is soft deleted.
	schedules, err := s.workScheduleRepo.GetByIDs(ctx, []string{active.WorkScheduleID})
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get assigned work schedule: %w", err)
	}
	ws, ok := schedules[active.WorkScheduleID]
	if !ok {
		return schedule.WorkScheduleResponse{}, schedule.ErrWorkScheduleNotFound
	}
	return schedule.NewWorkScheduleResponse(ws), nil
}
