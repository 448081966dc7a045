package schedule

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// WORK SCHEDULE DTOs
// ========================================

type CreateWorkScheduleRequest struct {
	Name             string `json:"name"`
	MorningStart     string `json:"morning_start"`   // HH:MM
	MorningEnd       string `json:"morning_end"`     // HH:MM
	AfternoonStart   string `json:"afternoon_start"` // HH:MM
	AfternoonEnd     string `json:"afternoon_end"`   // HH:MM
	ToleranceMinutes *int   `json:"tolerance_minutes"`
	WorkDays         []int  `json:"work_days,omitempty"`
	IsDefault        bool   `json:"is_default"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if r.ToleranceMinutes == nil {
		errs.Add("tolerance_minutes", "tolerance_minutes is required")
	} else if *r.ToleranceMinutes < 0 {
		errs.Add("tolerance_minutes", "tolerance_minutes must be a non-negative number")
	}
	validateWorkDays(&errs, r.WorkDays)
	validateTimes(&errs, r.MorningStart, r.MorningEnd, r.AfternoonStart, r.AfternoonEnd)

	return errs.Err()
}

// ToDefinition converts a validated request.
func (r *CreateWorkScheduleRequest) ToDefinition() ScheduleDefinition {
	workDays := r.WorkDays
	if len(workDays) == 0 {
		workDays = DefaultWorkDays
	}
	return ScheduleDefinition{
		Name:             strings.TrimSpace(r.Name),
		MorningStart:     MustParseTimeOfDay(r.MorningStart),
		MorningEnd:       MustParseTimeOfDay(r.MorningEnd),
		AfternoonStart:   MustParseTimeOfDay(r.AfternoonStart),
		AfternoonEnd:     MustParseTimeOfDay(r.AfternoonEnd),
		ToleranceMinutes: *r.ToleranceMinutes,
		WorkDays:         workDays,
		IsDefault:        r.IsDefault,
	}
}

type UpdateWorkScheduleRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name,omitempty"`
	MorningStart     *string `json:"morning_start,omitempty"`
	MorningEnd       *string `json:"morning_end,omitempty"`
	AfternoonStart   *string `json:"afternoon_start,omitempty"`
	AfternoonEnd     *string `json:"afternoon_end,omitempty"`
	ToleranceMinutes *int    `json:"tolerance_minutes,omitempty"`
	WorkDays         []int   `json:"work_days,omitempty"`
	IsDefault        *bool   `json:"is_default,omitempty"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs.Add("tolerance_minutes", "tolerance_minutes must be a non-negative number")
	}
	validateWorkDays(&errs, r.WorkDays)
	for field, value := range map[string]*string{
		"morning_start":   r.MorningStart,
		"morning_end":     r.MorningEnd,
		"afternoon_start": r.AfternoonStart,
		"afternoon_end":   r.AfternoonEnd,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidTime(*value); !ok {
			errs.Add(field, field+" must be a valid time in HH:MM format")
		}
	}

	return errs.Err()
}

// Apply merges the request into an existing definition. The caller re-checks CheckOrder.
func (r *UpdateWorkScheduleRequest) Apply(s ScheduleDefinition) ScheduleDefinition {
	if r.Name != nil {
		s.Name = strings.TrimSpace(*r.Name)
	}
	if r.MorningStart != nil {
		s.MorningStart = MustParseTimeOfDay(*r.MorningStart)
	}
	if r.MorningEnd != nil {
		s.MorningEnd = MustParseTimeOfDay(*r.MorningEnd)
	}
	if r.AfternoonStart != nil {
		s.AfternoonStart = MustParseTimeOfDay(*r.AfternoonStart)
	}
	if r.AfternoonEnd != nil {
		s.AfternoonEnd = MustParseTimeOfDay(*r.AfternoonEnd)
	}
	if r.ToleranceMinutes != nil {
		s.ToleranceMinutes = *r.ToleranceMinutes
	}
	if len(r.WorkDays) > 0 {
		s.WorkDays = r.WorkDays
	}
	if r.IsDefault != nil {
		s.IsDefault = *r.IsDefault
	}
	return s
}

func validateWorkDays(errs *validator.ValidationErrors, days []int) {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 1 || d > 7 {
			errs.Add("work_days", "work_days must contain values between 1 (Monday) and 7 (Sunday)")
			return
		}
		if seen[d] {
			errs.Add("work_days", "work_days must not contain duplicates")
			return
		}
		seen[d] = true
	}
}

func validateTimes(errs *validator.ValidationErrors, morningStart, morningEnd, afternoonStart, afternoonEnd string) {
	fields := []struct {
		name  string
		value string
	}{
		{"morning_start", morningStart},
		{"morning_end", morningEnd},
		{"afternoon_start", afternoonStart},
		{"afternoon_end", afternoonEnd},
	}

	valid := true
	for _, f := range fields {
		if validator.IsEmpty(f.value) {
			errs.Add(f.name, f.name+" is required")
			valid = false
		} else if _, ok := validator.IsValidTime(f.value); !ok {
			errs.Add(f.name, f.name+" must be a valid time in HH:MM format")
			valid = false
		}
	}
	if !valid {
		return
	}

	def := ScheduleDefinition{
		MorningStart:   MustParseTimeOfDay(morningStart),
		MorningEnd:     MustParseTimeOfDay(morningEnd),
		AfternoonStart: MustParseTimeOfDay(afternoonStart),
		AfternoonEnd:   MustParseTimeOfDay(afternoonEnd),
	}
	if !def.CheckOrder() {
		errs.Add("schedule", ErrInvalidScheduleOrder.Error())
	}
}

type WorkScheduleResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	MorningStart     string  `json:"morning_start"`
	MorningEnd       string  `json:"morning_end"`
	AfternoonStart   string  `json:"afternoon_start"`
	AfternoonEnd     string  `json:"afternoon_end"`
	ToleranceMinutes int     `json:"tolerance_minutes"`
	ScheduledMinutes int     `json:"scheduled_minutes"`
	WorkDays         []int   `json:"work_days"`
	IsDefault        bool    `json:"is_default"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	DeletedAt        *string `json:"deleted_at,omitempty"`
}

// NewWorkScheduleResponse maps an entity to its JSON form.
func NewWorkScheduleResponse(s ScheduleDefinition) WorkScheduleResponse {
	resp := WorkScheduleResponse{
		ID:               s.ID,
		Name:             s.Name,
		MorningStart:     s.MorningStart.String(),
		MorningEnd:       s.MorningEnd.String(),
		AfternoonStart:   s.AfternoonStart.String(),
		AfternoonEnd:     s.AfternoonEnd.String(),
		ToleranceMinutes: s.ToleranceMinutes,
		ScheduledMinutes: s.ScheduledMinutes(),
		WorkDays:         s.WorkDays,
		IsDefault:        s.IsDefault,
		CreatedAt:        s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if s.DeletedAt != nil {
		deletedAt := s.DeletedAt.Format("2006-01-02 15:04:05")
		resp.DeletedAt = &deletedAt
	}
	return resp
}

type ListWorkScheduleResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	Showing       string                 `json:"showing"`
	WorkSchedules []WorkScheduleResponse `json:"work_schedules"`
}

type WorkScheduleFilter struct {
	// Search & Filter
	Name *string `json:"name,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // name, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *WorkScheduleFilter) Validate() error {
	var errs validator.ValidationErrors

	validator.Pagination(&errs, &f.Page, &f.Limit)

	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, []string{"name", "created_at"}) {
			errs.Add("sort_by", "sort_by must be one of: name, created_at")
		}
	} else {
		f.SortBy = "name"
	}

	if f.SortOrder != "" {
		f.SortOrder = strings.ToLower(f.SortOrder)
		if !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
			errs.Add("sort_order", "sort_order must be one of: asc, desc")
		}
	} else {
		f.SortOrder = "asc"
	}

	return errs.Err()
}

// ========================================
// ASSIGNMENT DTOs
// ========================================

type AssignScheduleRequest struct {
	WorkScheduleID string  `json:"work_schedule_id"`
	EmployeeID     string  `json:"employee_id"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkScheduleID) {
		errs.Add("work_schedule_id", "work_schedule_id is required")
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs.Add("start_date", "start_date must be a valid date in YYYY-MM-DD format")
	}
	if r.EndDate != nil {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs.Add("end_date", "end_date must be a valid date in YYYY-MM-DD format")
		} else if *r.EndDate < r.StartDate {
			errs.Add("end_date", "end_date must not be before start_date")
		}
	}

	return errs.Err()
}

type AssignScheduleResponse struct {
	ID               string  `json:"id"`
	WorkScheduleID   string  `json:"work_schedule_id"`
	WorkScheduleName *string `json:"work_schedule_name,omitempty"`
	EmployeeID       string  `json:"employee_id"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func NewAssignScheduleResponse(a EmployeeScheduleAssignment) AssignScheduleResponse {
	resp := AssignScheduleResponse{
		ID:               a.ID,
		WorkScheduleID:   a.WorkScheduleID,
		WorkScheduleName: a.WorkScheduleName,
		EmployeeID:       a.EmployeeID,
		StartDate:        a.StartDate.Format("2006-01-02"),
		CreatedAt:        a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if a.EndDate != nil {
		endDate := a.EndDate.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	return resp
}
