package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, jwt.ErrWrongTokenType):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists),
		errors.Is(err, user.ErrCannotDeleteSelf),
		errors.Is(err, user.ErrCannotDemoteSelf):
		Conflict(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists),
		errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrInvalidEmployeeCode):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrEmployeeScheduleAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, schedule.ErrWorkScheduleNameExists),
		errors.Is(err, schedule.ErrCannotDeleteDefault),
		errors.Is(err, schedule.ErrDefaultRequired),
		errors.Is(err, schedule.ErrNoDefaultSchedule),
		errors.Is(err, schedule.ErrOverlappingScheduleAssignment):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrInvalidScheduleOrder),
		errors.Is(err, schedule.ErrEmployeeIDRequired),
		errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoScheduleFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrTemporaryExitNotFound):
		NotFound(w, "Temporary exit not found")
	case errors.Is(err, attendance.ErrExitAlreadyClosed),
		errors.Is(err, attendance.ErrOpenExitExists):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrReturnBeforeExit),
		errors.Is(err, attendance.ErrFutureDate),
		errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, err.Error())
	case errors.Is(err, holiday.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLongAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, leave.ErrOverlappingAbsence):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidAbsencePeriod),
		errors.Is(err, leave.ErrAbsenceEmployeeNeeded):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
