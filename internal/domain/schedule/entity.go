package schedule

import "time"

// ScheduleDefinition is a split working day: a morning and an afternoon half with a grace
// period applied to arrivals.
type ScheduleDefinition struct {
	ID               string
	Name             string
	MorningStart     TimeOfDay
	MorningEnd       TimeOfDay
	AfternoonStart   TimeOfDay
	AfternoonEnd     TimeOfDay
	ToleranceMinutes int
	WorkDays         []int // 1=Monday, ..., 7=Sunday
	IsDefault        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// DefaultWorkDays is Monday to Friday.
var DefaultWorkDays = []int{1, 2, 3, 4, 5}

// CheckOrder reports whether morningStart < morningEnd <= afternoonStart < afternoonEnd.
func (s ScheduleDefinition) CheckOrder() bool {
	return s.MorningStart < s.MorningEnd &&
		s.MorningEnd <= s.AfternoonStart &&
		s.AfternoonStart < s.AfternoonEnd
}

func (s ScheduleDefinition) MorningMinutes() int {
	return s.MorningEnd.Sub(s.MorningStart)
}

func (s ScheduleDefinition) AfternoonMinutes() int {
	return s.AfternoonEnd.Sub(s.AfternoonStart)
}

// ScheduledMinutes is the planned working time of one day.
func (s ScheduleDefinition) ScheduledMinutes() int {
	return s.MorningMinutes() + s.AfternoonMinutes()
}

// IsWorkDay reports whether the weekday is part of the schedule.
func (s ScheduleDefinition) IsWorkDay(day time.Weekday) bool {
	iso := int(day)
	if iso == 0 {
		iso = 7
	}
	workDays := s.WorkDays
	if len(workDays) == 0 {
		workDays = DefaultWorkDays
	}
	for _, d := range workDays {
		if d == iso {
			return true
		}
	}
	return false
}

type EmployeeScheduleAssignment struct {
	ID             string
	EmployeeID     string
	WorkScheduleID string
	StartDate      time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	WorkScheduleName *string
}

// Covers reports whether the assignment is active on date.
func (a EmployeeScheduleAssignment) Covers(date time.Time) bool {
	d := truncateDate(date)
	if d.Before(truncateDate(a.StartDate)) {
		return false
	}
	return a.EndDate == nil || !d.After(truncateDate(*a.EndDate))
}

// Overlaps reports whether two assignments share at least one day.
func (a EmployeeScheduleAssignment) Overlaps(b EmployeeScheduleAssignment) bool {
	if a.EndDate != nil && truncateDate(*a.EndDate).Before(truncateDate(b.StartDate)) {
		return false
	}
	if b.EndDate != nil && truncateDate(*b.EndDate).Before(truncateDate(a.StartDate)) {
		return false
	}
	return true
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
