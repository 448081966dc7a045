package leave

import "time"

// LongAbsence is an approved multi-day leave. StartDate and EndDate are inclusive.
type LongAbsence struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

var LeaveTypes = []string{"annual", "sick", "maternity", "paternity", "unpaid", "mission", "other"}

// Covers reports whether date falls inside the absence.
func (a LongAbsence) Covers(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(a.StartDate)) && !d.After(dateOnly(a.EndDate))
}

// Days is the number of calendar days of the absence.
func (a LongAbsence) Days() int {
	return int(dateOnly(a.EndDate).Sub(dateOnly(a.StartDate)).Hours()/24) + 1
}

// Find returns the absence covering date, if any.
func Find(absences []LongAbsence, employeeID string, date time.Time) (LongAbsence, bool) {
	for _, a := range absences {
		if a.EmployeeID == employeeID && a.Covers(date) {
			return a, true
		}
	}
	return LongAbsence{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
