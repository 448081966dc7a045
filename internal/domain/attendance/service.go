package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance evaluation and corrections
type AttendanceService interface {
	// EvaluateDay evaluates one employee on one date (YYYY-MM-DD)
	EvaluateDay(ctx context.Context, employeeID string, date string) (DailyStatusResponse, error)

	// ListDailyStatuses evaluates every active employee on the filter date
	ListDailyStatuses(ctx context.Context, filter DailyStatusFilter) (ListDailyStatusResponse, error)

	// GetMonthlyReport evaluates every day of month (YYYY-MM) for one employee
	GetMonthlyReport(ctx context.Context, employeeID string, month string) (MonthlyReportResponse, error)

	// UpsertRecord corrects the check times of a date
	UpsertRecord(ctx context.Context, req UpsertRecordRequest) (DailyStatusResponse, error)

	CreateTemporaryExit(ctx context.Context, req CreateTemporaryExitRequest) (TemporaryExitResponse, error)
	CloseTemporaryExit(ctx context.Context, req CloseTemporaryExitRequest) (TemporaryExitResponse, error)
	DeleteTemporaryExit(ctx context.Context, id string) error

	// EvaluateActiveEmployees is used by statistics and background jobs.
	EvaluateActiveEmployees(ctx context.Context, date time.Time) ([]DayEvaluation, error)
}
