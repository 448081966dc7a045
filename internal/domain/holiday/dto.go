package holiday

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}

	return errs.Err()
}

func (r *CreateHolidayRequest) ToHoliday() Holiday {
	date, _ := time.Parse("2006-01-02", r.Date)
	return Holiday{Date: date, Name: strings.TrimSpace(r.Name)}
}

type UpdateHolidayRequest struct {
	ID   string  `json:"-"`
	Date *string `json:"date,omitempty"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
		}
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}

	return errs.Err()
}

func (r *UpdateHolidayRequest) Apply(h Holiday) Holiday {
	if r.Date != nil {
		h.Date, _ = time.Parse("2006-01-02", *r.Date)
	}
	if r.Name != nil {
		h.Name = strings.TrimSpace(*r.Name)
	}
	return h
}

type HolidayResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Name    string `json:"name"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:      h.ID,
		Date:    h.Date.Format("2006-01-02"),
		Weekday: h.Date.Weekday().String(),
		Name:    h.Name,
	}
}
