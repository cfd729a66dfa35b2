package report

import "context"

type ReportService interface {
	EmployeesByDepartment(ctx context.Context) ([]DepartmentGroup, error)
	ProjectsByStatus(ctx context.Context) ([]StatusGroup, error)
	SalaryStatistics(ctx context.Context) (SalaryStatistics, error)
}
