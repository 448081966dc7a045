package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	MonthlyAttendancePDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// MonthlyAttendancePDF handles GET /reports/employees/{employeeID}/months/{month}.pdf
func (h *reportHandlerImpl) MonthlyAttendancePDF(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSuffix(chi.URLParam(r, "month"), ".pdf")

	file, err := h.reportService.MonthlyAttendancePDF(r.Context(), chi.URLParam(r, "employeeID"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.FileName, file.ContentType, file.Content)
}
