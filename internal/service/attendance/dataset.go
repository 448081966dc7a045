package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"golang.org/x/sync/errgroup"
)

type dayKey struct {
	employeeID string
	date       string
}

func keyOf(employeeID string, date time.Time) dayKey {
	return dayKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

// dataset holds everything needed to evaluate a set of employees over a date range.
type dataset struct {
	schedules   map[string]schedule.ScheduleDefinition
	fallback    *schedule.ScheduleDefinition
	assignments map[string][]schedule.EmployeeScheduleAssignment
	records     map[dayKey]attendance.DailyAttendanceRecord
	exits       map[dayKey][]attendance.TemporaryExit
	absences    map[string][]leave.LongAbsence
	holidays    holiday.Set
}

// loadDataset fetches the range data of the employees concurrently, one query per table.
func (s *AttendanceServiceImpl) loadDataset(ctx context.Context, employeeIDs []string, start, end time.Time) (*dataset, error) {
	var (
		records     []attendance.DailyAttendanceRecord
		exits       []attendance.TemporaryExit
		assignments []schedule.EmployeeScheduleAssignment
		absences    []leave.LongAbsence
		holidays    []holiday.Holiday
		fallback    *schedule.ScheduleDefinition
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.recordRepo.GetInRange(gCtx, employeeIDs, start, end)
		if err != nil {
			return fmt.Errorf("failed to get attendance records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		exits, err = s.exitRepo.GetInRange(gCtx, employeeIDs, start, end)
		if err != nil {
			return fmt.Errorf("failed to get temporary exits: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		assignments, err = s.assignmentRepo.GetInRange(gCtx, employeeIDs, start, end)
		if err != nil {
			return fmt.Errorf("failed to get schedule assignments: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		absences, err = s.absenceRepo.GetInRange(gCtx, employeeIDs, start, end)
		if err != nil {
			return fmt.Errorf("failed to get absences: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		holidays, err = s.holidayRepo.ListInRange(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to get holidays: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		def, err := s.workScheduleRepo.GetDefault(gCtx)
		if err != nil {
			if errors.Is(err, schedule.ErrNoDefaultSchedule) {
				return nil
			}
			return fmt.Errorf("failed to get default work schedule: %w", err)
		}
		fallback = &def
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &dataset{
		fallback:    fallback,
		assignments: make(map[string][]schedule.EmployeeScheduleAssignment),
		records:     make(map[dayKey]attendance.DailyAttendanceRecord, len(records)),
		exits:       make(map[dayKey][]attendance.TemporaryExit),
		absences:    make(map[string][]leave.LongAbsence),
		holidays:    holiday.NewSet(holidays),
	}
	for _, r := range records {
		ds.records[keyOf(r.EmployeeID, r.Date)] = r
	}
	for _, e := range exits {
		k := keyOf(e.EmployeeID, e.Date)
		ds.exits[k] = append(ds.exits[k], e)
	}
	for _, a := range absences {
		ds.absences[a.EmployeeID] = append(ds.absences[a.EmployeeID], a)
	}

	scheduleIDs := make([]string, 0, len(assignments))
	seen := make(map[string]bool)
	for _, a := range assignments {
		ds.assignments[a.EmployeeID] = append(ds.assignments[a.EmployeeID], a)
		if !seen[a.WorkScheduleID] {
			seen[a.WorkScheduleID] = true
			scheduleIDs = append(scheduleIDs, a.WorkScheduleID)
		}
	}
	ds.schedules = map[string]schedule.ScheduleDefinition{}
	if len(scheduleIDs) > 0 {
		schedules, err := s.workScheduleRepo.GetByIDs(ctx, scheduleIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get work schedules: %w", err)
		}
		ds.schedules = schedules
	}

	return ds, nil
}

// scheduleFor resolves the assignment covering date, then the default schedule.
func (ds *dataset) scheduleFor(employeeID string, date time.Time) (schedule.ScheduleDefinition, bool) {
	for _, a := range ds.assignments[employeeID] {
		if !a.Covers(date) {
			continue
		}
		if def, ok := ds.schedules[a.WorkScheduleID]; ok {
			return def, true
		}
	}
	if ds.fallback != nil {
		return *ds.fallback, true
	}
	return schedule.ScheduleDefinition{}, false
}

// recordFor returns the stored record or an empty one. A covering absence sets OnLeave unless the
// stored record already carries a leave.
func (ds *dataset) recordFor(employeeID string, date time.Time) attendance.DailyAttendanceRecord {
	rec, ok := ds.records[keyOf(employeeID, date)]
	if !ok {
		rec = attendance.DailyAttendanceRecord{EmployeeID: employeeID, Date: date}
	}
	if !rec.OnLeave {
		if a, found := leave.Find(ds.absences[employeeID], employeeID, date); found {
			leaveType := a.LeaveType
			rec.OnLeave = true
			rec.LeaveType = &leaveType
		}
	}
	return rec
}

func (ds *dataset) exitsFor(employeeID string, date time.Time) []attendance.TemporaryExit {
	return ds.exits[keyOf(employeeID, date)]
}
