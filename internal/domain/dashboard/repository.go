package dashboard

import (
	"context"
	"time"
)

// EmployeeSummaryStats combines all employee head counts in a single query
type EmployeeSummaryStats struct {
	Total    int64
	Active   int64
	Inactive int64
	New      int64 // hired since the given date
}

type DashboardRepository interface {
	GetEmployeeSummary(ctx context.Context, since time.Time) (EmployeeSummaryStats, error)
}
