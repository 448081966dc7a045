package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

const mostLateLimit = 5

type DashboardServiceImpl struct {
	dashboardRepo     dashboard.DashboardRepository
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
	today             func() time.Time
	maxParallel       int
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
	today func() time.Time,
	maxParallel int,
) dashboard.DashboardService {
	if maxParallel <= 0 {
		maxParallel = 1
	}
	return &DashboardServiceImpl{
		dashboardRepo:     dashboardRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		today:             today,
		maxParallel:       maxParallel,
	}
}

// GetDailyStats evaluates every active employee while the head counts load in parallel.
func (s *DashboardServiceImpl) GetDailyStats(ctx context.Context, date string) (dashboard.DailyStatsResponse, error) {
	today := s.today()
	day := today
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return dashboard.DailyStatsResponse{}, attendance.ErrInvalidDate
		}
		day = parsed
	}
	if day.After(today) {
		return dashboard.DailyStatsResponse{}, attendance.ErrFutureDate
	}

	var (
		summary     dashboard.EmployeeSummaryStats
		evaluations []attendance.DayEvaluation
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Head counts (1 query)
	g.Go(func() error {
		var err error
		summary, err = s.dashboardRepo.GetEmployeeSummary(gCtx, day.AddDate(0, 0, -30))
		if err != nil {
			return fmt.Errorf("failed to get employee summary: %w", err)
		}
		return nil
	})

	// 2. Evaluations (one bulk load, bounded fan-out inside the attendance service)
	g.Go(func() error {
		var err error
		evaluations, err = s.attendanceService.EvaluateActiveEmployees(gCtx, day)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DailyStatsResponse{}, err
	}

	resp := dashboard.DailyStatsResponse{
		Date: day.Format("2006-01-02"),
		Employees: dashboard.EmployeeSummaryResponse{
			TotalEmployee:    summary.Total,
			ActiveEmployee:   summary.Active,
			InactiveEmployee: summary.Inactive,
			NewEmployee:      summary.New,
		},
		Evaluated: len(evaluations),
		Counts:    make(map[attendance.Status]int, len(attendance.Statuses)),
	}
	for _, st := range attendance.Statuses {
		resp.Counts[st] = 0
	}

	for _, d := range evaluations {
		if d.Holiday != nil && !resp.IsHoliday {
			name := d.Holiday.Name
			resp.IsHoliday = true
			resp.HolidayName = &name
		}
		if d.Result.OpenExitAnomaly {
			resp.OpenExitAlerts++
		}
		if !d.Counted() {
			resp.NonWorkingCount++
			continue
		}
		resp.Counts[d.Result.Status]++
		resp.LateMinutes += d.Result.LateMinutes
		resp.WorkedMinutes += d.Result.WorkedMinutes
	}

	resp.AttendanceRate = dashboard.AttendanceRate(
		resp.Counts[attendance.StatusPresent],
		resp.Counts[attendance.StatusLate],
		resp.Counts[attendance.StatusEarlyDeparture],
		resp.Counts[attendance.StatusAbsent],
	)
	return resp, nil
}

// GetMonthlyStats fans out one monthly report per active employee.
func (s *DashboardServiceImpl) GetMonthlyStats(ctx context.Context, month string) (dashboard.MonthlyStatsResponse, error) {
	if month == "" {
		month = s.today().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return dashboard.MonthlyStatsResponse{}, attendance.ErrInvalidMonth
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return dashboard.MonthlyStatsResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	reports := make([]attendance.MonthlyReportResponse, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, emp := range employees {
		g.Go(func() error {
			report, err := s.attendanceService.GetMonthlyReport(gCtx, emp.ID, month)
			if err != nil {
				return fmt.Errorf("failed to build monthly report for %s: %w", emp.EmployeeCode, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dashboard.MonthlyStatsResponse{}, err
	}

	resp := dashboard.MonthlyStatsResponse{
		Month:     month,
		Employees: len(employees),
		MostLate:  []dashboard.LateEmployee{},
	}
	for _, r := range reports {
		resp.Totals.Merge(r.Totals)
		if r.Totals.Late > 0 {
			resp.MostLate = append(resp.MostLate, dashboard.LateEmployee{
				EmployeeID:   r.EmployeeID,
				EmployeeName: r.EmployeeName,
				LateDays:     r.Totals.Late,
				LateMinutes:  r.Totals.LateMinutes,
			})
		}
	}

	sort.SliceStable(resp.MostLate, func(i, j int) bool {
		a, b := resp.MostLate[i], resp.MostLate[j]
		if a.LateDays != b.LateDays {
			return a.LateDays > b.LateDays
		}
		return a.LateMinutes > b.LateMinutes
	})
	if len(resp.MostLate) > mostLateLimit {
		resp.MostLate = resp.MostLate[:mostLateLimit]
	}

	resp.AttendanceRate = dashboard.AttendanceRate(resp.Totals.Present, resp.Totals.Late, resp.Totals.EarlyDeparture, resp.Totals.Absent)
	return resp, nil
}
