package attendance

import (
	"context"
	"time"
)

// AttendanceRecordRepository defines data access methods for attendance_records.
type AttendanceRecordRepository interface {
	// GetByEmployeeAndDate returns nil when nothing was recorded that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyAttendanceRecord, error)

	// GetInRange retrieves the records of the employees between start and end (inclusive)
	GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]DailyAttendanceRecord, error)

	// Upsert inserts or replaces the record keyed by (employee_id, date)
	Upsert(ctx context.Context, record DailyAttendanceRecord) (DailyAttendanceRecord, error)
}

type TemporaryExitRepository interface {
	Create(ctx context.Context, exit TemporaryExit) (TemporaryExit, error)
	GetByID(ctx context.Context, id string) (TemporaryExit, error)
	Update(ctx context.Context, exit TemporaryExit) (TemporaryExit, error)
	Delete(ctx context.Context, id string) error

	// GetByEmployeeAndDate is ordered by exit_time.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]TemporaryExit, error)
	// GetInRange is ordered by date, then exit_time.
	GetInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]TemporaryExit, error)
}

// DailyStatusRepository stores the output of the snapshot job.
type DailyStatusRepository interface {
	UpsertBatch(ctx context.Context, snapshots []DailyStatusSnapshot) error
}
