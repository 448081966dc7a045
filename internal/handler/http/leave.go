package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateAbsence(w http.ResponseWriter, r *http.Request)
	ListAbsences(w http.ResponseWriter, r *http.Request)
	DeleteAbsence(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLongAbsenceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence recorded successfully", result)
}

func (h *leaveHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	filter := leave.LongAbsenceFilter{
		EmployeeID: queryPtr(r, "employee_id"),
		LeaveType:  queryPtr(r, "leave_type"),
		StartDate:  queryPtr(r, "start_date"),
		EndDate:    queryPtr(r, "end_date"),
	}
	filter.Page, filter.Limit = pagination(r)

	result, err := h.leaveService.ListAbsences(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteAbsence(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}
