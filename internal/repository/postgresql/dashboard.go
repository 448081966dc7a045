package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeSummary returns all head counts in a single query
func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context, since time.Time) (dashboard.EmployeeSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN NOT is_active THEN 1 ELSE 0 END), 0) AS inactive,
			COALESCE(SUM(CASE WHEN hire_date >= $1::date THEN 1 ELSE 0 END), 0) AS new_hires
		FROM employees
		WHERE deleted_at IS NULL
	`

	var stats dashboard.EmployeeSummaryStats
	err := q.QueryRow(ctx, query, since).Scan(&stats.Total, &stats.Active, &stats.Inactive, &stats.New)
	if err != nil {
		return dashboard.EmployeeSummaryStats{}, fmt.Errorf("failed to get employee summary: %w", err)
	}
	return stats, nil
}
