package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
)

// DailyAttendanceRecord holds the raw check times of one employee on one date.
type DailyAttendanceRecord struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	MorningCheckIn    *schedule.TimeOfDay
	MorningCheckOut   *schedule.TimeOfDay
	AfternoonCheckIn  *schedule.TimeOfDay
	AfternoonCheckOut *schedule.TimeOfDay
	OnLeave           bool
	LeaveType         *string
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasAnyCheck reports whether at least one of the four check times is set.
func (r DailyAttendanceRecord) HasAnyCheck() bool {
	return r.MorningCheckIn != nil || r.MorningCheckOut != nil ||
		r.AfternoonCheckIn != nil || r.AfternoonCheckOut != nil
}

// TemporaryExit is a departure and return during working hours. ReturnTime is nil while the exit is open.
type TemporaryExit struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ExitTime   schedule.TimeOfDay
	ReturnTime *schedule.TimeOfDay
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e TemporaryExit) IsOpen() bool {
	return e.ReturnTime == nil
}

// DurationMinutes is returnTime - exitTime. ok is false for an open exit.
func (e TemporaryExit) DurationMinutes() (minutes int, ok bool) {
	if e.ReturnTime == nil {
		return 0, false
	}
	return e.ReturnTime.Sub(e.ExitTime), true
}

type Status string

const (
	StatusPresent        Status = "PRESENT"
	StatusLate           Status = "LATE"
	StatusEarlyDeparture Status = "EARLY_DEPARTURE"
	StatusAbsent         Status = "ABSENT"
	StatusOnLeave        Status = "ON_LEAVE"
)

var Statuses = []Status{StatusPresent, StatusLate, StatusEarlyDeparture, StatusAbsent, StatusOnLeave}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// HalfDay is the evaluation of one working span (morning or afternoon).
type HalfDay struct {
	Recorded              bool // both check times present and ordered
	WorkedMinutes         int
	Late                  bool
	LateMinutes           int
	EarlyDeparture        bool
	EarlyDepartureMinutes int
}

// EvaluatedStatus is derived from a schedule, a record and its exits. It is never persisted as is.
type EvaluatedStatus struct {
	Status                Status
	LeaveType             *string
	WorkedMinutes         int
	MissedMinutes         int
	ScheduledMinutes      int
	ExitMinutes           int
	LateMinutes           int
	EarlyDepartureMinutes int
	Morning               HalfDay
	Afternoon             HalfDay
	OpenExitAnomaly       bool
}

// DailyStatusSnapshot is the stored result of the nightly evaluation job.
type DailyStatusSnapshot struct {
	EmployeeID            string
	Date                  time.Time
	WorkScheduleID        string
	Status                Status
	WorkedMinutes         int
	MissedMinutes         int
	LateMinutes           int
	EarlyDepartureMinutes int
	IsHoliday             bool
	IsWorkDay             bool
	OpenExitAnomaly       bool
	EvaluatedAt           time.Time
}

// DayEvaluation bundles the inputs and the result of one (employee, date) evaluation.
type DayEvaluation struct {
	Employee  employee.Employee
	Date      time.Time
	Schedule  schedule.ScheduleDefinition
	IsWorkDay bool
	IsFuture  bool
	Holiday   *holiday.Holiday
	Record    DailyAttendanceRecord
	Exits     []TemporaryExit
	Result    EvaluatedStatus
}

// Counted reports whether the day enters monthly totals: a past or current scheduled work day that is not a holiday.
func (d DayEvaluation) Counted() bool {
	return d.IsWorkDay && d.Holiday == nil && !d.IsFuture
}

// Snapshot converts the evaluation into its stored form.
func (d DayEvaluation) Snapshot(evaluatedAt time.Time) DailyStatusSnapshot {
	return DailyStatusSnapshot{
		EmployeeID:            d.Employee.ID,
		Date:                  d.Date,
		WorkScheduleID:        d.Schedule.ID,
		Status:                d.Result.Status,
		WorkedMinutes:         d.Result.WorkedMinutes,
		MissedMinutes:         d.Result.MissedMinutes,
		LateMinutes:           d.Result.LateMinutes,
		EarlyDepartureMinutes: d.Result.EarlyDepartureMinutes,
		IsHoliday:             d.Holiday != nil,
		IsWorkDay:             d.IsWorkDay,
		OpenExitAnomaly:       d.Result.OpenExitAnomaly,
		EvaluatedAt:           evaluatedAt,
	}
}
