package leave

import (
	"context"
	"time"
)

// LongAbsenceRepository - interface for long_absences table
type LongAbsenceRepository interface {
	Create(ctx context.Context, absence LongAbsence) (LongAbsence, error)
	GetByID(ctx context.Context, id string) (LongAbsence, error)
	List(ctx context.Context, filter LongAbsenceFilter) ([]LongAbsence, int64, error)
	// ExistsOverlapping reports whether the employee already has an absence intersecting [start, end].
	ExistsOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	// GetInRange returns absences of the employees intersecting [start, end].
	GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]LongAbsence, error)
	Delete(ctx context.Context, id string) error
}
