package schedule

import "errors"

var (
	// Work Schedule Errors
	ErrWorkScheduleNotFound   = errors.New("work schedule not found")
	ErrWorkScheduleNameExists = errors.New("work schedule with this name already exists")
	ErrInvalidScheduleOrder   = errors.New("schedule times must satisfy morning_start < morning_end <= afternoon_start < afternoon_end")
	ErrCannotDeleteDefault    = errors.New("the default work schedule cannot be deleted")
	ErrNoDefaultSchedule      = errors.New("no default work schedule configured")
	ErrDefaultRequired        = errors.New("mark another work schedule as default instead")

	// Employee Schedule Assignment Errors
	ErrEmployeeScheduleAssignmentNotFound = errors.New("employee schedule assignment not found")
	ErrOverlappingScheduleAssignment      = errors.New("overlapping schedule assignment detected")

	// Validation Errors
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)
