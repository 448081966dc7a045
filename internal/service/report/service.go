package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewReportService(attendanceService attendance.AttendanceService, now func() time.Time) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		now:               now,
	}
}

// MonthlyAttendancePDF implements report.ReportService.
func (s *ReportServiceImpl) MonthlyAttendancePDF(ctx context.Context, employeeID string, month string) (report.File, error) {
	monthly, err := s.attendanceService.GetMonthlyReport(ctx, employeeID, month)
	if err != nil {
		return report.File{}, err
	}

	content, err := renderMonthlyPDF(monthly, s.now())
	if err != nil {
		return report.File{}, fmt.Errorf("failed to render monthly report: %w", err)
	}

	return report.File{
		FileName:    fmt.Sprintf("attendance-%s-%s.pdf", monthly.EmployeeCode, monthly.Month),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

var dayColumns = []struct {
	title string
	width float64
}{
	{"Date", 22}, {"Day", 12}, {"AM in", 14}, {"AM out", 14}, {"PM in", 14}, {"PM out", 14},
	{"Status", 34}, {"Worked", 16}, {"Missed", 16}, {"Late", 14}, {"Early", 14},
}

func renderMonthlyPDF(m attendance.MonthlyReportResponse, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Attendance %s %s", m.EmployeeCode, m.Month), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Monthly attendance report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Employee: %s (%s)", m.EmployeeName, m.EmployeeCode))
	pdf.Ln(6)
	if m.Department != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Department: %s", *m.Department))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Month: %s", m.Month))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range dayColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, d := range m.Days {
		status := dayLabel(d)
		cells := []string{
			d.Date, shortWeekday(d.Weekday),
			orDash(d.MorningCheckIn), orDash(d.MorningCheckOut),
			orDash(d.AfternoonCheckIn), orDash(d.AfternoonCheckOut),
			status,
			minutes(d.WorkedMinutes), minutes(d.MissedMinutes),
			minutes(d.LateMinutes), minutes(d.EarlyDepartureMinutes),
		}
		for i, col := range dayColumns {
			align := "C"
			if i == 6 {
				align = "L"
			}
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	t := m.Totals
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Working days: %d  (holidays %d, non-working days %d)", t.WorkingDays, t.Holidays, t.NonWorkingDays),
		fmt.Sprintf("Present: %d   Late: %d   Early departure: %d   Absent: %d   On leave: %d",
			t.Present, t.Late, t.EarlyDeparture, t.Absent, t.OnLeave),
		fmt.Sprintf("Worked: %s of %s scheduled   Missed: %s", minutes(t.WorkedMinutes), minutes(t.ScheduledMinutes), minutes(t.MissedMinutes)),
		fmt.Sprintf("Late: %s   Early departure: %s   Open exit anomalies: %d",
			minutes(t.LateMinutes), minutes(t.EarlyDepartureMinutes), t.Anomalies),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dayLabel(d attendance.MonthlyDayResponse) string {
	switch {
	case d.HolidayName != nil:
		return "Holiday: " + *d.HolidayName
	case !d.IsWorkDay:
		return "Off"
	case !d.Counted:
		return "-"
	case d.Status == attendance.StatusOnLeave && d.LeaveType != nil:
		return "On leave (" + *d.LeaveType + ")"
	}
	label := string(d.Status)
	if d.OpenExitAnomaly {
		label += " *"
	}
	return label
}

func shortWeekday(w string) string {
	if len(w) < 3 {
		return w
	}
	return w[:3]
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// minutes renders a duration as H:MM.
func minutes(m int) string {
	if m == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}
