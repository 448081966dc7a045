package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string // NNNN-NNNN
	FullName     string
	Email        *string
	Position     *string
	Department   *string
	IsActive     bool
	HireDate     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
