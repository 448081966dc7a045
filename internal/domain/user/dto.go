package user

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if validator.IsEmpty(r.FullName) {
		errs.Add("full_name", "full_name is required")
	}
	validatePassword(&errs, r.Password)
	if !validator.IsInSlice(r.Role, Roles) {
		errs.Add("role", "role must be one of: "+strings.Join(Roles, ", "))
	}

	return errs.Err()
}

type UpdateUserRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs.Add("full_name", "full_name must not be empty")
	}
	if r.Password != nil {
		validatePassword(&errs, *r.Password)
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, Roles) {
		errs.Add("role", "role must be one of: "+strings.Join(Roles, ", "))
	}

	return errs.Err()
}

func validatePassword(errs *validator.ValidationErrors, password string) {
	if validator.IsEmpty(password) {
		errs.Add("password", "password is required")
	} else if len(password) < 8 {
		errs.Add("password", "password must be at least 8 characters long")
	} else if len(password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Role        Role    `json:"role"`
	IsActive    bool    `json:"is_active"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.LastLoginAt != nil {
		lastLogin := u.LastLoginAt.Format("2006-01-02 15:04:05")
		resp.LastLoginAt = &lastLogin
	}
	return resp
}

type ListUserResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Showing    string         `json:"showing"`
	Users      []UserResponse `json:"users"`
}

type UserFilter struct {
	Search *string `json:"search,omitempty"` // email or full name
	Role   *string `json:"role,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	validator.Pagination(&errs, &f.Page, &f.Limit)
	if f.Role != nil && !validator.IsInSlice(*f.Role, Roles) {
		errs.Add("role", "role must be one of: "+strings.Join(Roles, ", "))
	}

	return errs.Err()
}
