package report

import "context"

type ReportService interface {
	// MonthlyAttendancePDF renders the monthly report of one employee (month is YYYY-MM)
	MonthlyAttendancePDF(ctx context.Context, employeeID string, month string) (File, error)
}
