package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrHolidayDateExists = errors.New("a holiday is already registered on this date")
	ErrInvalidYear       = errors.New("year must be between 1970 and 9999")
)
