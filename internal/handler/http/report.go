package http

import (
	"net/http"

	"github.com/corpdesk/company-backend-go/internal/domain/report"
	"github.com/corpdesk/company-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	EmployeesByDepartment(w http.ResponseWriter, r *http.Request)
	ProjectsByStatus(w http.ResponseWriter, r *http.Request)
	SalaryStatistics(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) EmployeesByDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.EmployeesByDepartment(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) ProjectsByStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ProjectsByStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) SalaryStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SalaryStatistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
