package attendance

import "errors"

// Attendance domain errors
var (
	ErrNoScheduleFound       = errors.New("no work schedule found for this employee and date")
	ErrTemporaryExitNotFound = errors.New("temporary exit not found")
	ErrExitAlreadyClosed     = errors.New("temporary exit has already been closed")
	ErrReturnBeforeExit      = errors.New("return_time must not be before exit_time")
	ErrOpenExitExists        = errors.New("employee already has an open temporary exit on this date")
	ErrFutureDate            = errors.New("date cannot be in the future")
	ErrInvalidDate           = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidMonth          = errors.New("invalid month format, use YYYY-MM")
)
