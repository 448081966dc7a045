package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDailyStats(w http.ResponseWriter, r *http.Request)
	GetMonthlyStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDailyStats handles GET /dashboard/daily?date=YYYY-MM-DD
func (h *dashboardHandlerImpl) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDailyStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyStats handles GET /dashboard/monthly?month=YYYY-MM
func (h *dashboardHandlerImpl) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetMonthlyStats(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
