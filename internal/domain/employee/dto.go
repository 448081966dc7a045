package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        *string `json:"email,omitempty"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs.Add("employee_code", "employee_code is required")
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs.Add("employee_code", "employee_code must match NNNN-NNNN")
	}
	if validator.IsEmpty(r.FullName) {
		errs.Add("full_name", "full_name is required")
	} else if len(r.FullName) > 150 {
		errs.Add("full_name", "full_name must not exceed 150 characters")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.HireDate != nil {
		if _, valid := validator.IsValidDate(*r.HireDate); !valid {
			errs.Add("hire_date", "hire_date must be a valid date in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// ToEmployee converts a validated request into a new active employee.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	e := Employee{
		EmployeeCode: r.EmployeeCode,
		FullName:     strings.TrimSpace(r.FullName),
		Email:        r.Email,
		Position:     r.Position,
		Department:   r.Department,
		IsActive:     true,
	}
	if r.HireDate != nil {
		hireDate, _ := time.Parse("2006-01-02", *r.HireDate)
		e.HireDate = &hireDate
	}
	return e
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs.Add("full_name", "full_name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if r.HireDate != nil {
		if _, valid := validator.IsValidDate(*r.HireDate); !valid {
			errs.Add("hire_date", "hire_date must be a valid date in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// Apply copies the provided fields onto e.
func (r *UpdateEmployeeRequest) Apply(e Employee) Employee {
	if r.FullName != nil {
		e.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		e.Email = r.Email
	}
	if r.Position != nil {
		e.Position = r.Position
	}
	if r.Department != nil {
		e.Department = r.Department
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
	if r.HireDate != nil {
		hireDate, _ := time.Parse("2006-01-02", *r.HireDate)
		e.HireDate = &hireDate
	}
	return e
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        *string `json:"email,omitempty"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	IsActive     bool    `json:"is_active"`
	HireDate     *string `json:"hire_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Position:     e.Position,
		Department:   e.Department,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.HireDate != nil {
		hireDate := e.HireDate.Format("2006-01-02")
		resp.HireDate = &hireDate
	}
	return resp
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}

type EmployeeFilter struct {
	// Search & Filter
	Search     *string `json:"search,omitempty"` // full name or employee code
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // full_name, employee_code, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	validator.Pagination(&errs, &f.Page, &f.Limit)

	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, []string{"full_name", "employee_code", "created_at"}) {
			errs.Add("sort_by", "sort_by must be one of: full_name, employee_code, created_at")
		}
	} else {
		f.SortBy = "full_name"
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
