package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type UpsertRecordRequest struct {
	EmployeeID        string  `json:"-"`
	Date              string  `json:"-"` // YYYY-MM-DD
	MorningCheckIn    *string `json:"morning_check_in"`
	MorningCheckOut   *string `json:"morning_check_out"`
	AfternoonCheckIn  *string `json:"afternoon_check_in"`
	AfternoonCheckOut *string `json:"afternoon_check_out"`
	Notes             *string `json:"notes,omitempty"`
}

func (r *UpsertRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"morning_check_in", r.MorningCheckIn},
		{"morning_check_out", r.MorningCheckOut},
		{"afternoon_check_in", r.AfternoonCheckIn},
		{"afternoon_check_out", r.AfternoonCheckOut},
	}
	valid := true
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if _, ok := validator.IsValidTime(*f.value); !ok {
			errs.Add(f.name, f.name+" must be in HH:MM format")
			valid = false
		}
	}
	if valid {
		if pairOutOfOrder(r.MorningCheckIn, r.MorningCheckOut) {
			errs.Add("morning_check_out", "morning_check_out must not be before morning_check_in")
		}
		if pairOutOfOrder(r.AfternoonCheckIn, r.AfternoonCheckOut) {
			errs.Add("afternoon_check_out", "afternoon_check_out must not be before afternoon_check_in")
		}
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		errs.Add("notes", "notes must not exceed 500 characters")
	}

	return errs.Err()
}

// Apply parses the validated check times onto rec.
func (r *UpsertRecordRequest) Apply(rec DailyAttendanceRecord) DailyAttendanceRecord {
	rec.MorningCheckIn, _ = schedule.Ptr(r.MorningCheckIn)
	rec.MorningCheckOut, _ = schedule.Ptr(r.MorningCheckOut)
	rec.AfternoonCheckIn, _ = schedule.Ptr(r.AfternoonCheckIn)
	rec.AfternoonCheckOut, _ = schedule.Ptr(r.AfternoonCheckOut)
	if r.Notes != nil {
		rec.Notes = r.Notes
	}
	return rec
}

func pairOutOfOrder(in, out *string) bool {
	if in == nil || out == nil {
		return false
	}
	a, errA := schedule.ParseTimeOfDay(*in)
	b, errB := schedule.ParseTimeOfDay(*out)
	return errA == nil && errB == nil && b.Before(a)
}

type CreateTemporaryExitRequest struct {
	EmployeeID string  `json:"-"`
	Date       string  `json:"-"` // YYYY-MM-DD
	ExitTime   string  `json:"exit_time"`
	ReturnTime *string `json:"return_time,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateTemporaryExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
	}
	_, exitOK := validator.IsValidTime(r.ExitTime)
	if !exitOK {
		errs.Add("exit_time", "exit_time must be in HH:MM format")
	}
	if r.ReturnTime != nil {
		if _, ok := validator.IsValidTime(*r.ReturnTime); !ok {
			errs.Add("return_time", "return_time must be in HH:MM format")
		} else if exitOK && pairOutOfOrder(&r.ExitTime, r.ReturnTime) {
			errs.Add("return_time", ErrReturnBeforeExit.Error())
		}
	}

	return errs.Err()
}

type CloseTemporaryExitRequest struct {
	ID         string `json:"-"`
	ReturnTime string `json:"return_time"`
}

func (r *CloseTemporaryExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if _, ok := validator.IsValidTime(r.ReturnTime); !ok {
		errs.Add("return_time", "return_time must be in HH:MM format")
	}

	return errs.Err()
}

type DailyStatusFilter struct {
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
	Status     *string `json:"status,omitempty"`
	Search     *string `json:"search,omitempty"` // employee name or code
	Department *string `json:"department,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *DailyStatusFilter) Validate() error {
	var errs validator.ValidationErrors

	validator.Pagination(&errs, &f.Page, &f.Limit)

	if f.Date != "" {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if f.Status != nil {
		*f.Status = strings.ToUpper(*f.Status)
		if !Status(*f.Status).IsValid() {
			errs.Add("status", "status must be one of: PRESENT, LATE, EARLY_DEPARTURE, ABSENT, ON_LEAVE")
		}
	}

	return errs.Err()
}

// ========================================
// RESPONSES
// ========================================

type HalfDayResponse struct {
	Recorded              bool `json:"recorded"`
	WorkedMinutes         int  `json:"worked_minutes"`
	Late                  bool `json:"late"`
	LateMinutes           int  `json:"late_minutes"`
	EarlyDeparture        bool `json:"early_departure"`
	EarlyDepartureMinutes int  `json:"early_departure_minutes"`
}

type EvaluationResponse struct {
	Status                Status          `json:"status"`
	LeaveType             *string         `json:"leave_type,omitempty"`
	WorkedMinutes         int             `json:"worked_minutes"`
	MissedMinutes         int             `json:"missed_minutes"`
	ScheduledMinutes      int             `json:"scheduled_minutes"`
	ExitMinutes           int             `json:"exit_minutes"`
	LateMinutes           int             `json:"late_minutes"`
	EarlyDepartureMinutes int             `json:"early_departure_minutes"`
	Morning               HalfDayResponse `json:"morning"`
	Afternoon             HalfDayResponse `json:"afternoon"`
	OpenExitAnomaly       bool            `json:"open_exit_anomaly"`
}

func NewEvaluationResponse(s EvaluatedStatus) EvaluationResponse {
	return EvaluationResponse{
		Status:                s.Status,
		LeaveType:             s.LeaveType,
		WorkedMinutes:         s.WorkedMinutes,
		MissedMinutes:         s.MissedMinutes,
		ScheduledMinutes:      s.ScheduledMinutes,
		ExitMinutes:           s.ExitMinutes,
		LateMinutes:           s.LateMinutes,
		EarlyDepartureMinutes: s.EarlyDepartureMinutes,
		Morning:               HalfDayResponse(s.Morning),
		Afternoon:             HalfDayResponse(s.Afternoon),
		OpenExitAnomaly:       s.OpenExitAnomaly,
	}
}

type RecordResponse struct {
	MorningCheckIn    *string `json:"morning_check_in"`
	MorningCheckOut   *string `json:"morning_check_out"`
	AfternoonCheckIn  *string `json:"afternoon_check_in"`
	AfternoonCheckOut *string `json:"afternoon_check_out"`
	Notes             *string `json:"notes,omitempty"`
}

type TemporaryExitResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	ExitTime        string  `json:"exit_time"`
	ReturnTime      *string `json:"return_time"`
	DurationMinutes *int    `json:"duration_minutes"`
	Open            bool    `json:"open"`
	Reason          *string `json:"reason,omitempty"`
}

func NewTemporaryExitResponse(e TemporaryExit) TemporaryExitResponse {
	resp := TemporaryExitResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format("2006-01-02"),
		ExitTime:   e.ExitTime.String(),
		ReturnTime: schedule.FormatPtr(e.ReturnTime),
		Open:       e.IsOpen(),
		Reason:     e.Reason,
	}
	if d, ok := e.DurationMinutes(); ok {
		resp.DurationMinutes = &d
	}
	return resp
}

type ScheduleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DailyStatusResponse struct {
	EmployeeID   string                  `json:"employee_id"`
	EmployeeCode string                  `json:"employee_code"`
	EmployeeName string                  `json:"employee_name"`
	Department   *string                 `json:"department,omitempty"`
	Date         string                  `json:"date"`
	Weekday      string                  `json:"weekday"`
	WorkSchedule ScheduleRef             `json:"work_schedule"`
	IsWorkDay    bool                    `json:"is_work_day"`
	IsHoliday    bool                    `json:"is_holiday"`
	HolidayName  *string                 `json:"holiday_name,omitempty"`
	Record       RecordResponse          `json:"record"`
	Exits        []TemporaryExitResponse `json:"exits"`
	Evaluation   EvaluationResponse      `json:"evaluation"`
}

func NewDailyStatusResponse(d DayEvaluation) DailyStatusResponse {
	resp := DailyStatusResponse{
		EmployeeID:   d.Employee.ID,
		EmployeeCode: d.Employee.EmployeeCode,
		EmployeeName: d.Employee.FullName,
		Department:   d.Employee.Department,
		Date:         d.Date.Format("2006-01-02"),
		Weekday:      d.Date.Weekday().String(),
		WorkSchedule: ScheduleRef{ID: d.Schedule.ID, Name: d.Schedule.Name},
		IsWorkDay:    d.IsWorkDay,
		IsHoliday:    d.Holiday != nil,
		Record: RecordResponse{
			MorningCheckIn:    schedule.FormatPtr(d.Record.MorningCheckIn),
			MorningCheckOut:   schedule.FormatPtr(d.Record.MorningCheckOut),
			AfternoonCheckIn:  schedule.FormatPtr(d.Record.AfternoonCheckIn),
			AfternoonCheckOut: schedule.FormatPtr(d.Record.AfternoonCheckOut),
			Notes:             d.Record.Notes,
		},
		Exits:      make([]TemporaryExitResponse, 0, len(d.Exits)),
		Evaluation: NewEvaluationResponse(d.Result),
	}
	if d.Holiday != nil {
		resp.HolidayName = &d.Holiday.Name
	}
	for _, e := range d.Exits {
		resp.Exits = append(resp.Exits, NewTemporaryExitResponse(e))
	}
	return resp
}

type ListDailyStatusResponse struct {
	Date       string                `json:"date"`
	Summary    map[Status]int        `json:"summary"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
	Showing    string                `json:"showing"`
	Statuses   []DailyStatusResponse `json:"statuses"`
}

type MonthlyDayResponse struct {
	Date                  string  `json:"date"`
	Weekday               string  `json:"weekday"`
	IsWorkDay             bool    `json:"is_work_day"`
	IsHoliday             bool    `json:"is_holiday"`
	HolidayName           *string `json:"holiday_name,omitempty"`
	Counted               bool    `json:"counted"`
	Status                Status  `json:"status"`
	LeaveType             *string `json:"leave_type,omitempty"`
	MorningCheckIn        *string `json:"morning_check_in"`
	MorningCheckOut       *string `json:"morning_check_out"`
	AfternoonCheckIn      *string `json:"afternoon_check_in"`
	AfternoonCheckOut     *string `json:"afternoon_check_out"`
	WorkedMinutes         int     `json:"worked_minutes"`
	MissedMinutes         int     `json:"missed_minutes"`
	LateMinutes           int     `json:"late_minutes"`
	EarlyDepartureMinutes int     `json:"early_departure_minutes"`
	ExitMinutes           int     `json:"exit_minutes"`
	OpenExitAnomaly       bool    `json:"open_exit_anomaly"`
}

func NewMonthlyDayResponse(d DayEvaluation) MonthlyDayResponse {
	resp := MonthlyDayResponse{
		Date:                  d.Date.Format("2006-01-02"),
		Weekday:               d.Date.Weekday().String(),
		IsWorkDay:             d.IsWorkDay,
		IsHoliday:             d.Holiday != nil,
		Counted:               d.Counted(),
		Status:                d.Result.Status,
		LeaveType:             d.Result.LeaveType,
		MorningCheckIn:        schedule.FormatPtr(d.Record.MorningCheckIn),
		MorningCheckOut:       schedule.FormatPtr(d.Record.MorningCheckOut),
		AfternoonCheckIn:      schedule.FormatPtr(d.Record.AfternoonCheckIn),
		AfternoonCheckOut:     schedule.FormatPtr(d.Record.AfternoonCheckOut),
		WorkedMinutes:         d.Result.WorkedMinutes,
		MissedMinutes:         d.Result.MissedMinutes,
		LateMinutes:           d.Result.LateMinutes,
		EarlyDepartureMinutes: d.Result.EarlyDepartureMinutes,
		ExitMinutes:           d.Result.ExitMinutes,
		OpenExitAnomaly:       d.Result.OpenExitAnomaly,
	}
	if d.Holiday != nil {
		resp.HolidayName = &d.Holiday.Name
	}
	return resp
}

type MonthlyTotals struct {
	WorkingDays           int `json:"working_days"`
	Present               int `json:"present"`
	Late                  int `json:"late"`
	EarlyDeparture        int `json:"early_departure"`
	Absent                int `json:"absent"`
	OnLeave               int `json:"on_leave"`
	Holidays              int `json:"holidays"`
	NonWorkingDays        int `json:"non_working_days"`
	WorkedMinutes         int `json:"worked_minutes"`
	MissedMinutes         int `json:"missed_minutes"`
	ScheduledMinutes      int `json:"scheduled_minutes"`
	LateMinutes           int `json:"late_minutes"`
	EarlyDepartureMinutes int `json:"early_departure_minutes"`
	Anomalies             int `json:"anomalies"`
}

// Add accumulates one day. Holidays and non-working days are only counted as such.
// Missed minutes of leave days stay out of the monthly total.
func (t *MonthlyTotals) Add(d DayEvaluation) {
	switch {
	case d.IsFuture:
		return
	case d.Holiday != nil:
		t.Holidays++
		return
	case !d.IsWorkDay:
		t.NonWorkingDays++
		return
	}

	t.WorkingDays++
	switch d.Result.Status {
	case StatusPresent:
		t.Present++
	case StatusLate:
		t.Late++
	case StatusEarlyDeparture:
		t.EarlyDeparture++
	case StatusAbsent:
		t.Absent++
	case StatusOnLeave:
		t.OnLeave++
	}
	t.WorkedMinutes += d.Result.WorkedMinutes
	t.ScheduledMinutes += d.Result.ScheduledMinutes
	if d.Result.Status != StatusOnLeave {
		t.MissedMinutes += d.Result.MissedMinutes
	}
	t.LateMinutes += d.Result.LateMinutes
	t.EarlyDepartureMinutes += d.Result.EarlyDepartureMinutes
	if d.Result.OpenExitAnomaly {
		t.Anomalies++
	}
}

// Merge adds the totals of another report.
func (t *MonthlyTotals) Merge(o MonthlyTotals) {
	t.WorkingDays += o.WorkingDays
	t.Present += o.Present
	t.Late += o.Late
	t.EarlyDeparture += o.EarlyDeparture
	t.Absent += o.Absent
	t.OnLeave += o.OnLeave
	t.Holidays += o.Holidays
	t.NonWorkingDays += o.NonWorkingDays
	t.WorkedMinutes += o.WorkedMinutes
	t.MissedMinutes += o.MissedMinutes
	t.ScheduledMinutes += o.ScheduledMinutes
	t.LateMinutes += o.LateMinutes
	t.EarlyDepartureMinutes += o.EarlyDepartureMinutes
	t.Anomalies += o.Anomalies
}

type MonthlyReportResponse struct {
	EmployeeID   string               `json:"employee_id"`
	EmployeeCode string               `json:"employee_code"`
	EmployeeName string               `json:"employee_name"`
	Department   *string              `json:"department,omitempty"`
	Month        string               `json:"month"`
	Days         []MonthlyDayResponse `json:"days"`
	Totals       MonthlyTotals        `json:"totals"`
}
