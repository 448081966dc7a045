package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateLongAbsenceRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLongAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", ErrAbsenceEmployeeNeeded.Error())
	}
	r.LeaveType = strings.ToLower(strings.TrimSpace(r.LeaveType))
	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs.Add("leave_type", "leave_type must be one of: "+strings.Join(LeaveTypes, ", "))
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be a valid date in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be a valid date in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", ErrInvalidAbsencePeriod.Error())
	}

	return errs.Err()
}

func (r *CreateLongAbsenceRequest) ToLongAbsence() LongAbsence {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return LongAbsence{
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     r.Reason,
	}
}

type LongAbsenceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       *string `json:"reason,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func NewLongAbsenceResponse(a LongAbsence) LongAbsenceResponse {
	return LongAbsenceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		LeaveType:    a.LeaveType,
		StartDate:    a.StartDate.Format("2006-01-02"),
		EndDate:      a.EndDate.Format("2006-01-02"),
		Days:         a.Days(),
		Reason:       a.Reason,
		CreatedAt:    a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListLongAbsenceResponse struct {
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
	Showing    string                `json:"showing"`
	Absences   []LongAbsenceResponse `json:"absences"`
}

type LongAbsenceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	LeaveType  *string `json:"leave_type,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LongAbsenceFilter) Validate() error {
	var errs validator.ValidationErrors

	validator.Pagination(&errs, &f.Page, &f.Limit)

	if f.LeaveType != nil && !validator.IsInSlice(*f.LeaveType, LeaveTypes) {
		errs.Add("leave_type", "leave_type must be one of: "+strings.Join(LeaveTypes, ", "))
	}
	if f.StartDate != nil {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != nil {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}
