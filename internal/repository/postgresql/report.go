package postgresql

import (
	"context"

	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/domain/report"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type ReportRepository interface {
	EmployeesByDepartment(ctx context.Context) ([]report.DepartmentGroup, error)
	ProjectsByStatus(ctx context.Context) ([]report.StatusGroup, error)
	SalaryStatistics(ctx context.Context) (report.SalaryStatistics, error)
}

type reportRepositoryImpl struct {
	db database.Pool
}

func NewReportRepository(db database.Pool) ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// EmployeesByDepartment groups employees by department with count and
// average salary, largest departments first.
func (r *reportRepositoryImpl) EmployeesByDepartment(ctx context.Context) ([]report.DepartmentGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH dept_summary AS (
			SELECT department, COUNT(*) AS employee_count, AVG(salary) AS avg_salary
			FROM employees
			GROUP BY department
		)
		SELECT d.department, d.employee_count, d.avg_salary, e.name, e.position
		FROM dept_summary d
		JOIN employees e ON e.department = d.department
		ORDER BY d.employee_count DESC, d.department ASC, e.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("employees by department report", err)
	}
	defer rows.Close()

	groupMap := make(map[string]*report.DepartmentGroup)
	var groupOrder []string

	for rows.Next() {
		var dept, name, position string
		var count int64
		var avgSalary decimal.Decimal

		if err := rows.Scan(&dept, &count, &avgSalary, &name, &position); err != nil {
			return nil, storeError("scan department group", err)
		}

		group, ok := groupMap[dept]
		if !ok {
			group = &report.DepartmentGroup{
				Department:    dept,
				EmployeeCount: count,
				AvgSalary:     avgSalary,
			}
			groupMap[dept] = group
			groupOrder = append(groupOrder, dept)
		}
		group.Employees = append(group.Employees, report.EmployeeInline{Name: name, Position: position})
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("employees by department report", err)
	}

	result := make([]report.DepartmentGroup, 0, len(groupOrder))
	for _, dept := range groupOrder {
		result = append(result, *groupMap[dept])
	}
	return result, nil
}

// ProjectsByStatus groups projects by status with count and total
// budget.
func (r *reportRepositoryImpl) ProjectsByStatus(ctx context.Context) ([]report.StatusGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH status_summary AS (
			SELECT status, COUNT(*) AS project_count, SUM(budget) AS total_budget
			FROM projects
			GROUP BY status
		)
		SELECT s.status, s.project_count, s.total_budget, p.name, p.budget
		FROM status_summary s
		JOIN projects p ON p.status = s.status
		ORDER BY s.status ASC, p.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("projects by status report", err)
	}
	defer rows.Close()

	groupMap := make(map[project.Status]*report.StatusGroup)
	var groupOrder []project.Status

	for rows.Next() {
		var status project.Status
		var count int64
		var totalBudget, budget decimal.Decimal
		var name string

		if err := rows.Scan(&status, &count, &totalBudget, &name, &budget); err != nil {
			return nil, storeError("scan status group", err)
		}

		group, ok := groupMap[status]
		if !ok {
			group = &report.StatusGroup{
				Status:       status,
				ProjectCount: count,
				TotalBudget:  totalBudget,
			}
			groupMap[status] = group
			groupOrder = append(groupOrder, status)
		}
		group.Projects = append(group.Projects, report.ProjectInline{Name: name, Budget: budget})
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("projects by status report", err)
	}

	result := make([]report.StatusGroup, 0, len(groupOrder))
	for _, status := range groupOrder {
		result = append(result, *groupMap[status])
	}
	return result, nil
}

// SalaryStatistics aggregates over the whole employee collection. The
// aggregates come back NULL when the collection is empty; that NULL is
// preserved in the report.
func (r *reportRepositoryImpl) SalaryStatistics(ctx context.Context) (report.SalaryStatistics, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT AVG(salary), MIN(salary), MAX(salary), COUNT(*) FROM employees`

	var avg, min, max decimal.NullDecimal
	var total int64
	if err := q.QueryRow(ctx, query).Scan(&avg, &min, &max, &total); err != nil {
		return report.SalaryStatistics{}, storeError("salary statistics report", err)
	}

	stats := report.SalaryStatistics{TotalEmployees: total}
	if avg.Valid {
		stats.AvgSalary = &avg.Decimal
	}
	if min.Valid {
		stats.MinSalary = &min.Decimal
	}
	if max.Valid {
		stats.MaxSalary = &max.Decimal
	}
	return stats, nil
}
