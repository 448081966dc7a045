package dashboard

import "github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"

// ========== EMPLOYEE SUMMARY ==========

// EmployeeSummaryResponse contains total, active, inactive and recently hired employee counts
type EmployeeSummaryResponse struct {
	TotalEmployee    int64 `json:"total_employee"`
	ActiveEmployee   int64 `json:"active_employee"`
	InactiveEmployee int64 `json:"inactive_employee"`
	NewEmployee      int64 `json:"new_employee"` // hired within 30 days
}

// ========== DAILY ==========

type DailyStatsResponse struct {
	Date            string                    `json:"date"`
	IsHoliday       bool                      `json:"is_holiday"`
	HolidayName     *string                   `json:"holiday_name,omitempty"`
	Employees       EmployeeSummaryResponse   `json:"employees"`
	Evaluated       int                       `json:"evaluated"`
	Counts          map[attendance.Status]int `json:"counts"`
	AttendanceRate  float64                   `json:"attendance_rate"` // percentage of expected employees who showed up
	LateMinutes     int                       `json:"late_minutes"`
	WorkedMinutes   int                       `json:"worked_minutes"`
	OpenExitAlerts  int                       `json:"open_exit_alerts"`
	NonWorkingCount int                       `json:"non_working_count"` // employees whose schedule is off that day
}

// ========== MONTHLY ==========

type LateEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LateDays     int    `json:"late_days"`
	LateMinutes  int    `json:"late_minutes"`
}

type MonthlyStatsResponse struct {
	Month          string                   `json:"month"`
	Employees      int                      `json:"employees"`
	Totals         attendance.MonthlyTotals `json:"totals"`
	AttendanceRate float64                  `json:"attendance_rate"`
	MostLate       []LateEmployee           `json:"most_late"`
}

// AttendanceRate is attended / expected as a percentage with one decimal. Leave days are not expected.
func AttendanceRate(present, late, earlyDeparture, absent int) float64 {
	attended := present + late + earlyDeparture
	expected := attended + absent
	if expected == 0 {
		return 0
	}
	return float64(int(float64(attended)*1000/float64(expected)+0.5)) / 10
}
