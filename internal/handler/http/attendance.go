package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListDailyStatuses(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	UpsertRecord(w http.ResponseWriter, r *http.Request)
	CreateTemporaryExit(w http.ResponseWriter, r *http.Request)
	CloseTemporaryExit(w http.ResponseWriter, r *http.Request)
	DeleteTemporaryExit(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListDailyStatuses evaluates every active employee on ?date= (today by default).
func (h *attendanceHandlerImpl) ListDailyStatuses(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DailyStatusFilter{
		Date:       r.URL.Query().Get("date"),
		Status:     queryPtr(r, "status"),
		Search:     queryPtr(r, "search"),
		Department: queryPtr(r, "department"),
	}
	filter.Page, filter.Limit = pagination(r)

	result, err := h.attendanceService.ListDailyStatuses(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.EvaluateDay(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetMonthlyReport(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertRecord replaces the four check times of a date. Omitted times are cleared.
func (h *attendanceHandlerImpl) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Date = chi.URLParam(r, "date")

	result, err := h.attendanceService.UpsertRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record saved", result)
}

func (h *attendanceHandlerImpl) CreateTemporaryExit(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateTemporaryExitRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Date = chi.URLParam(r, "date")

	result, err := h.attendanceService.CreateTemporaryExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Temporary exit recorded", result)
}

func (h *attendanceHandlerImpl) CloseTemporaryExit(w http.ResponseWriter, r *http.Request) {
	var req attendance.CloseTemporaryExitRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.CloseTemporaryExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Temporary exit closed", result)
}

func (h *attendanceHandlerImpl) DeleteTemporaryExit(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteTemporaryExit(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Temporary exit deleted", nil)
}
