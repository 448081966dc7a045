package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	recordRepo       attendance.AttendanceRecordRepository
	exitRepo         attendance.TemporaryExitRepository
	employeeRepo     employee.EmployeeRepository
	workScheduleRepo schedule.WorkScheduleRepository
	assignmentRepo   schedule.EmployeeScheduleAssignmentRepository
	holidayRepo      holiday.HolidayRepository
	absenceRepo      leave.LongAbsenceRepository
	evaluator        *Evaluator
	maxParallel      int
}

func NewAttendanceService(
	recordRepo attendance.AttendanceRecordRepository,
	exitRepo attendance.TemporaryExitRepository,
	employeeRepo employee.EmployeeRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
	assignmentRepo schedule.EmployeeScheduleAssignmentRepository,
	holidayRepo holiday.HolidayRepository,
	absenceRepo leave.LongAbsenceRepository,
	evaluator *Evaluator,
	maxParallel int,
) attendance.AttendanceService {
	if maxParallel <= 0 {
		maxParallel = 1
	}
	return &AttendanceServiceImpl{
		recordRepo:       recordRepo,
		exitRepo:         exitRepo,
		employeeRepo:     employeeRepo,
		workScheduleRepo: workScheduleRepo,
		assignmentRepo:   assignmentRepo,
		holidayRepo:      holidayRepo,
		absenceRepo:      absenceRepo,
		evaluator:        evaluator,
		maxParallel:      maxParallel,
	}
}

type job struct {
	employee employee.Employee
	date     time.Time
}

// evaluateAll evaluates the jobs against ds with at most maxParallel goroutines. Results keep the job order.
func (s *AttendanceServiceImpl) evaluateAll(ctx context.Context, ds *dataset, jobs []job) ([]attendance.DayEvaluation, error) {
	results := make([]attendance.DayEvaluation, len(jobs))
	today := s.evaluator.Today()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sched, ok := ds.scheduleFor(j.employee.ID, j.date)
			if !ok {
				return attendance.ErrNoScheduleFound
			}
			rec := ds.recordFor(j.employee.ID, j.date)
			exits := ds.exitsFor(j.employee.ID, j.date)

			d := attendance.DayEvaluation{
				Employee:  j.employee,
				Date:      j.date,
				Schedule:  sched,
				IsWorkDay: sched.IsWorkDay(j.date.Weekday()),
				IsFuture:  j.date.After(today),
				Record:    rec,
				Exits:     exits,
				Result:    s.evaluator.Evaluate(sched, rec, exits),
			}
			if h, ok := ds.holidays.On(j.date); ok {
				d.Holiday = &h
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *AttendanceServiceImpl) evaluateEmployeeDay(ctx context.Context, emp employee.Employee, date time.Time) (attendance.DayEvaluation, error) {
	ds, err := s.loadDataset(ctx, []string{emp.ID}, date, date)
	if err != nil {
		return attendance.DayEvaluation{}, err
	}
	results, err := s.evaluateAll(ctx, ds, []job{{employee: emp, date: date}})
	if err != nil {
		return attendance.DayEvaluation{}, err
	}
	return results[0], nil
}

// EvaluateDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EvaluateDay(ctx context.Context, employeeID string, date string) (attendance.DailyStatusResponse, error) {
	day, valid := parseDate(date)
	if !valid {
		return attendance.DailyStatusResponse{}, attendance.ErrInvalidDate
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}

	d, err := s.evaluateEmployeeDay(ctx, emp, day)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}
	return attendance.NewDailyStatusResponse(d), nil
}

// EvaluateActiveEmployees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EvaluateActiveEmployees(ctx context.Context, date time.Time) ([]attendance.DayEvaluation, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	return s.evaluateEmployees(ctx, employees, dateOnly(date))
}

func (s *AttendanceServiceImpl) evaluateEmployees(ctx context.Context, employees []employee.Employee, date time.Time) ([]attendance.DayEvaluation, error) {
	if len(employees) == 0 {
		return []attendance.DayEvaluation{}, nil
	}

	ids := make([]string, len(employees))
	jobs := make([]job, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
		jobs[i] = job{employee: e, date: date}
	}

	ds, err := s.loadDataset(ctx, ids, date, date)
	if err != nil {
		return nil, err
	}
	return s.evaluateAll(ctx, ds, jobs)
}

// ListDailyStatuses implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListDailyStatuses(ctx context.Context, filter attendance.DailyStatusFilter) (attendance.ListDailyStatusResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListDailyStatusResponse{}, err
	}

	date := s.evaluator.Today()
	if filter.Date != "" {
		date, _ = parseDate(filter.Date)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return attendance.ListDailyStatusResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	employees = filterEmployees(employees, filter.Search, filter.Department)

	evaluations, err := s.evaluateEmployees(ctx, employees, date)
	if err != nil {
		return attendance.ListDailyStatusResponse{}, err
	}

	summary := make(map[attendance.Status]int, len(attendance.Statuses))
	for _, st := range attendance.Statuses {
		summary[st] = 0
	}
	matched := make([]attendance.DayEvaluation, 0, len(evaluations))
	for _, d := range evaluations {
		summary[d.Result.Status]++
		if filter.Status != nil && string(d.Result.Status) != *filter.Status {
			continue
		}
		matched = append(matched, d)
	}

	from, to := utils.PageBounds(filter.Page, filter.Limit, len(matched))
	statuses := make([]attendance.DailyStatusResponse, 0, to-from)
	for _, d := range matched[from:to] {
		statuses = append(statuses, attendance.NewDailyStatusResponse(d))
	}

	total := int64(len(matched))
	return attendance.ListDailyStatusResponse{
		Date:       date.Format("2006-01-02"),
		Summary:    summary,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: utils.TotalPages(total, filter.Limit),
		Showing:    utils.Showing(filter.Page, filter.Limit, len(statuses), total),
		Statuses:   statuses,
	}, nil
}

// GetMonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyReport(ctx context.Context, employeeID string, month string) (attendance.MonthlyReportResponse, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return attendance.MonthlyReportResponse{}, attendance.ErrInvalidMonth
	}
	last := first.AddDate(0, 1, -1)

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	ds, err := s.loadDataset(ctx, []string{emp.ID}, first, last)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	jobs := make([]job, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		jobs = append(jobs, job{employee: emp, date: d})
	}
	evaluations, err := s.evaluateAll(ctx, ds, jobs)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	resp := attendance.MonthlyReportResponse{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName,
		Department:   emp.Department,
		Month:        first.Format("2006-01"),
		Days:         make([]attendance.MonthlyDayResponse, 0, len(evaluations)),
	}
	for _, d := range evaluations {
		resp.Days = append(resp.Days, attendance.NewMonthlyDayResponse(d))
		resp.Totals.Add(d)
	}
	return resp, nil
}

// UpsertRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpsertRecord(ctx context.Context, req attendance.UpsertRecordRequest) (attendance.DailyStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyStatusResponse{}, err
	}
	day, _ := parseDate(req.Date)
	if day.After(s.evaluator.Today()) {
		return attendance.DailyStatusResponse{}, attendance.ErrFutureDate
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}

	existing, err := s.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.DailyStatusResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	rec := attendance.DailyAttendanceRecord{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: emp.ID,
		Date:       day,
	}
	if existing != nil {
		rec = *existing
	}

	if _, err := s.recordRepo.Upsert(ctx, req.Apply(rec)); err != nil {
		return attendance.DailyStatusResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	d, err := s.evaluateEmployeeDay(ctx, emp, day)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}
	return attendance.NewDailyStatusResponse(d), nil
}

// CreateTemporaryExit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateTemporaryExit(ctx context.Context, req attendance.CreateTemporaryExitRequest) (attendance.TemporaryExitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TemporaryExitResponse{}, err
	}
	day, _ := parseDate(req.Date)
	if day.After(s.evaluator.Today()) {
		return attendance.TemporaryExitResponse{}, attendance.ErrFutureDate
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.TemporaryExitResponse{}, err
	}

	if req.ReturnTime == nil {
		sameDay, err := s.exitRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
		if err != nil {
			return attendance.TemporaryExitResponse{}, fmt.Errorf("failed to get temporary exits: %w", err)
		}
		for _, e := range sameDay {
			if e.IsOpen() {
				return attendance.TemporaryExitResponse{}, attendance.ErrOpenExitExists
			}
		}
	}

	returnTime, _ := schedule.Ptr(req.ReturnTime)
	created, err := s.exitRepo.Create(ctx, attendance.TemporaryExit{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		Date:       day,
		ExitTime:   schedule.MustParseTimeOfDay(req.ExitTime),
		ReturnTime: returnTime,
		Reason:     req.Reason,
	})
	if err != nil {
		return attendance.TemporaryExitResponse{}, fmt.Errorf("failed to create temporary exit: %w", err)
	}
	return attendance.NewTemporaryExitResponse(created), nil
}

// CloseTemporaryExit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CloseTemporaryExit(ctx context.Context, req attendance.CloseTemporaryExitRequest) (attendance.TemporaryExitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TemporaryExitResponse{}, err
	}

	exit, err := s.exitRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.TemporaryExitResponse{}, err
	}
	if !exit.IsOpen() {
		return attendance.TemporaryExitResponse{}, attendance.ErrExitAlreadyClosed
	}

	returnTime := schedule.MustParseTimeOfDay(req.ReturnTime)
	if returnTime.Before(exit.ExitTime) {
		return attendance.TemporaryExitResponse{}, attendance.ErrReturnBeforeExit
	}
	exit.ReturnTime = &returnTime

	updated, err := s.exitRepo.Update(ctx, exit)
	if err != nil {
		return attendance.TemporaryExitResponse{}, fmt.Errorf("failed to close temporary exit: %w", err)
	}
	return attendance.NewTemporaryExitResponse(updated), nil
}

// DeleteTemporaryExit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteTemporaryExit(ctx context.Context, id string) error {
	return s.exitRepo.Delete(ctx, id)
}

func filterEmployees(employees []employee.Employee, search, department *string) []employee.Employee {
	if search == nil && department == nil {
		return employees
	}
	var needle string
	if search != nil {
		needle = strings.ToLower(strings.TrimSpace(*search))
	}
	filtered := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if department != nil && (e.Department == nil || !strings.EqualFold(*e.Department, *department)) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.FullName), needle) &&
			!strings.Contains(e.EmployeeCode, needle) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", s)
	return d, err == nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
