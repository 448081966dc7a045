package leave

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	runInTx      postgresql.TxRunner
	absenceRepo  leave.LongAbsenceRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(runInTx postgresql.TxRunner, absenceRepo leave.LongAbsenceRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		runInTx:      runInTx,
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateAbsence implements leave.LeaveService. Overlap check and insert share one transaction.
func (s *LeaveServiceImpl) CreateAbsence(ctx context.Context, req leave.CreateLongAbsenceRequest) (leave.LongAbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LongAbsenceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LongAbsenceResponse{}, err
	}

	absence := req.ToLongAbsence()
	absence.ID = uuid.Must(uuid.NewV7()).String()

	var created leave.LongAbsence
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		overlapping, err := s.absenceRepo.ExistsOverlapping(txCtx, absence.EmployeeID, absence.StartDate, absence.EndDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping absences: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingAbsence
		}

		created, err = s.absenceRepo.Create(txCtx, absence)
		return err
	})
	if err != nil {
		return leave.LongAbsenceResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return leave.NewLongAbsenceResponse(created), nil
}

// ListAbsences implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAbsences(ctx context.Context, filter leave.LongAbsenceFilter) (leave.ListLongAbsenceResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLongAbsenceResponse{}, err
	}

	absences, total, err := s.absenceRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLongAbsenceResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	responses := make([]leave.LongAbsenceResponse, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, leave.NewLongAbsenceResponse(a))
	}

	return leave.ListLongAbsenceResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: utils.TotalPages(total, filter.Limit),
		Showing:    utils.Showing(filter.Page, filter.Limit, len(responses), total),
		Absences:   responses,
	}, nil
}

// DeleteAbsence implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	return s.absenceRepo.Delete(ctx, id)
}
