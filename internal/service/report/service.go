package report

import (
	"context"

	"github.com/corpdesk/company-backend-go/internal/domain/report"
	"github.com/corpdesk/company-backend-go/internal/repository/postgresql"
)

// Reports are computed at request time against the current store
// snapshot; nothing is cached.
type ReportServiceImpl struct {
	reportRepo postgresql.ReportRepository
}

func NewReportService(reportRepo postgresql.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

// EmployeesByDepartment implements report.ReportService.
func (s *ReportServiceImpl) EmployeesByDepartment(ctx context.Context) ([]report.DepartmentGroup, error) {
	return s.reportRepo.EmployeesByDepartment(ctx)
}

// ProjectsByStatus implements report.ReportService.
func (s *ReportServiceImpl) ProjectsByStatus(ctx context.Context) ([]report.StatusGroup, error) {
	return s.reportRepo.ProjectsByStatus(ctx)
}

// SalaryStatistics implements report.ReportService.
func (s *ReportServiceImpl) SalaryStatistics(ctx context.Context) (report.SalaryStatistics, error) {
	return s.reportRepo.SalaryStatistics(ctx)
}
