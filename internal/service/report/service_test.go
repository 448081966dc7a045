package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	report attendance.MonthlyReportResponse
}

func (s stubAttendanceService) GetMonthlyReport(ctx context.Context, employeeID string, month string) (attendance.MonthlyReportResponse, error) {
	if employeeID != s.report.EmployeeID {
		return attendance.MonthlyReportResponse{}, employee.ErrEmployeeNotFound
	}
	return s.report, nil
}

func strPtr(s string) *string { return &s }

func TestMonthlyAttendancePDF(t *testing.T) {
	dept := "Support"
	monthly := attendance.MonthlyReportResponse{
		EmployeeID:   "emp-1",
		EmployeeCode: "0001-0001",
		EmployeeName: "Amina Diallo",
		Department:   &dept,
		Month:        "2025-03",
		Days: []attendance.MonthlyDayResponse{
			{Date: "2025-03-03", Weekday: "Monday", IsWorkDay: true, Counted: true, Status: attendance.StatusLate,
				MorningCheckIn: strPtr("09:20"), MorningCheckOut: strPtr("12:00"), AfternoonCheckIn: strPtr("13:00"), AfternoonCheckOut: strPtr("17:00"),
				WorkedMinutes: 400, MissedMinutes: 20, LateMinutes: 20},
			{Date: "2025-03-04", Weekday: "Tuesday", IsWorkDay: true, Counted: true, Status: attendance.StatusOnLeave, LeaveType: strPtr("sick")},
			{Date: "2025-03-08", Weekday: "Saturday", Status: attendance.StatusAbsent},
		},
		Totals: attendance.MonthlyTotals{WorkingDays: 2, Late: 1, OnLeave: 1, NonWorkingDays: 1, WorkedMinutes: 400, LateMinutes: 20},
	}
	now := func() time.Time { return time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC) }
	svc := NewReportService(stubAttendanceService{report: monthly}, now)

	file, err := svc.MonthlyAttendancePDF(context.Background(), "emp-1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "attendance-0001-0001-2025-03.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))

	_, err = svc.MonthlyAttendancePDF(context.Background(), "emp-404", "2025-03")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Holiday: Labour Day", dayLabel(attendance.MonthlyDayResponse{HolidayName: strPtr("Labour Day"), IsWorkDay: true}))
	assert.Equal(t, "Off", dayLabel(attendance.MonthlyDayResponse{}))
	assert.Equal(t, "-", dayLabel(attendance.MonthlyDayResponse{IsWorkDay: true}))
	assert.Equal(t, "On leave (sick)", dayLabel(attendance.MonthlyDayResponse{IsWorkDay: true, Counted: true, Status: attendance.StatusOnLeave, LeaveType: strPtr("sick")}))
	assert.Equal(t, "LATE *", dayLabel(attendance.MonthlyDayResponse{IsWorkDay: true, Counted: true, Status: attendance.StatusLate, OpenExitAnomaly: true}))
	assert.Equal(t, "7:05", minutes(425))
	assert.Equal(t, "-", minutes(0))
}
