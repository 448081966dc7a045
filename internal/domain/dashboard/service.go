package dashboard

import "context"

// DashboardService defines the interface for attendance statistics
type DashboardService interface {
	// GetDailyStats returns status counts across active employees for a date (YYYY-MM-DD, default today)
	GetDailyStats(ctx context.Context, date string) (DailyStatsResponse, error)

	// GetMonthlyStats aggregates the monthly reports of every active employee (YYYY-MM, default current month)
	GetMonthlyStats(ctx context.Context, month string) (MonthlyStatsResponse, error)
}
