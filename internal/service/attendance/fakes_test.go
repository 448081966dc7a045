package attendance

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
)

var errNotImplemented = errors.New("not implemented")

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ---- employees ----

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, errNotImplemented
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, errNotImplemented
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, errNotImplemented
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	return errNotImplemented
}

// ---- attendance records ----

type fakeRecordRepo struct {
	records []attendance.DailyAttendanceRecord
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.DailyAttendanceRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.DailyAttendanceRecord, error) {
	var out []attendance.DailyAttendanceRecord
	for _, r := range f.records {
		if contains(employeeIDs, r.EmployeeID) && inRange(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, record attendance.DailyAttendanceRecord) (attendance.DailyAttendanceRecord, error) {
	for i, r := range f.records {
		if r.EmployeeID == record.EmployeeID && r.Date.Equal(record.Date) {
			f.records[i] = record
			return record, nil
		}
	}
	f.records = append(f.records, record)
	return record, nil
}

// ---- temporary exits ----

type fakeExitRepo struct {
	exits []attendance.TemporaryExit
}

func (f *fakeExitRepo) Create(ctx context.Context, exit attendance.TemporaryExit) (attendance.TemporaryExit, error) {
	f.exits = append(f.exits, exit)
	return exit, nil
}

func (f *fakeExitRepo) GetByID(ctx context.Context, id string) (attendance.TemporaryExit, error) {
	for _, e := range f.exits {
		if e.ID == id {
			return e, nil
		}
	}
	return attendance.TemporaryExit{}, attendance.ErrTemporaryExitNotFound
}

func (f *fakeExitRepo) Update(ctx context.Context, exit attendance.TemporaryExit) (attendance.TemporaryExit, error) {
	for i, e := range f.exits {
		if e.ID == exit.ID {
			f.exits[i] = exit
			return exit, nil
		}
	}
	return attendance.TemporaryExit{}, attendance.ErrTemporaryExitNotFound
}

func (f *fakeExitRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.exits {
		if e.ID == id {
			f.exits = append(f.exits[:i], f.exits[i+1:]...)
			return nil
		}
	}
	return attendance.ErrTemporaryExitNotFound
}

func (f *fakeExitRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.TemporaryExit, error) {
	return f.GetInRange(ctx, []string{employeeID}, date, date)
}

func (f *fakeExitRepo) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.TemporaryExit, error) {
	var out []attendance.TemporaryExit
	for _, e := range f.exits {
		if contains(employeeIDs, e.EmployeeID) && inRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ExitTime < out[j].ExitTime
	})
	return out, nil
}

// ---- schedules ----

type fakeWorkScheduleRepo struct {
	schedules map[string]schedule.ScheduleDefinition
}

func (f *fakeWorkScheduleRepo) Create(ctx context.Context, ws schedule.ScheduleDefinition) (schedule.ScheduleDefinition, error) {
	return schedule.ScheduleDefinition{}, errNotImplemented
}

func (f *fakeWorkScheduleRepo) GetByID(ctx context.Context, id string) (schedule.ScheduleDefinition, error) {
	ws, ok := f.schedules[id]
	if !ok {
		return schedule.ScheduleDefinition{}, schedule.ErrWorkScheduleNotFound
	}
	return ws, nil
}

func (f *fakeWorkScheduleRepo) GetDefault(ctx context.Context) (schedule.ScheduleDefinition, error) {
	for _, ws := range f.schedules {
		if ws.IsDefault {
			return ws, nil
		}
	}
	return schedule.ScheduleDefinition{}, schedule.ErrNoDefaultSchedule
}

func (f *fakeWorkScheduleRepo) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.ScheduleDefinition, int64, error) {
	return nil, 0, errNotImplemented
}

func (f *fakeWorkScheduleRepo) Update(ctx context.Context, ws schedule.ScheduleDefinition) (schedule.ScheduleDefinition, error) {
	return schedule.ScheduleDefinition{}, errNotImplemented
}

func (f *fakeWorkScheduleRepo) ClearDefault(ctx context.Context, exceptID string) error {
	return errNotImplemented
}

func (f *fakeWorkScheduleRepo) SoftDelete(ctx context.Context, id string) error {
	return errNotImplemented
}

func (f *fakeWorkScheduleRepo) GetByIDs(ctx context.Context, ids []string) (map[string]schedule.ScheduleDefinition, error) {
	out := make(map[string]schedule.ScheduleDefinition)
	for _, id := range ids {
		if ws, ok := f.schedules[id]; ok {
			out[id] = ws
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments []schedule.EmployeeScheduleAssignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a schedule.EmployeeScheduleAssignment) (schedule.EmployeeScheduleAssignment, error) {
	return schedule.EmployeeScheduleAssignment{}, errNotImplemented
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id string) (schedule.EmployeeScheduleAssignment, error) {
	return schedule.EmployeeScheduleAssignment{}, errNotImplemented
}

func (f *fakeAssignmentRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.EmployeeScheduleAssignment, error) {
	return nil, errNotImplemented
}

func (f *fakeAssignmentRepo) GetActive(ctx context.Context, employeeID string, date time.Time) (*schedule.EmployeeScheduleAssignment, error) {
	return nil, errNotImplemented
}

func (f *fakeAssignmentRepo) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]schedule.EmployeeScheduleAssignment, error) {
	window := schedule.EmployeeScheduleAssignment{StartDate: start, EndDate: &end}
	var out []schedule.EmployeeScheduleAssignment
	for _, a := range f.assignments {
		if contains(employeeIDs, a.EmployeeID) && a.Overlaps(window) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id string) error {
	return errNotImplemented
}

// ---- holidays and absences ----

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return holiday.Holiday{}, errNotImplemented
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	return holiday.Holiday{}, errNotImplemented
}

func (f *fakeHolidayRepo) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	return nil, errNotImplemented
}

func (f *fakeHolidayRepo) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return nil, errNotImplemented
}

func (f *fakeHolidayRepo) ListInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if inRange(h.Date, start, end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return holiday.Holiday{}, errNotImplemented
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	return errNotImplemented
}

type fakeAbsenceRepo struct {
	absences []leave.LongAbsence
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, a leave.LongAbsence) (leave.LongAbsence, error) {
	return leave.LongAbsence{}, errNotImplemented
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string) (leave.LongAbsence, error) {
	return leave.LongAbsence{}, errNotImplemented
}

func (f *fakeAbsenceRepo) List(ctx context.Context, filter leave.LongAbsenceFilter) ([]leave.LongAbsence, int64, error) {
	return nil, 0, errNotImplemented
}

func (f *fakeAbsenceRepo) ExistsOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return false, errNotImplemented
}

func (f *fakeAbsenceRepo) GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]leave.LongAbsence, error) {
	var out []leave.LongAbsence
	for _, a := range f.absences {
		if contains(employeeIDs, a.EmployeeID) && !a.EndDate.Before(start) && !a.StartDate.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) Delete(ctx context.Context, id string) error {
	return errNotImplemented
}
