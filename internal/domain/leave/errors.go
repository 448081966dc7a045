package leave

import "errors"

var (
	ErrLongAbsenceNotFound   = errors.New("absence not found")
	ErrOverlappingAbsence    = errors.New("employee already has an absence overlapping this period")
	ErrInvalidAbsencePeriod  = errors.New("end_date must not be before start_date")
	ErrAbsenceEmployeeNeeded = errors.New("employee_id is required")
)
