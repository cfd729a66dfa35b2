package report

import (
	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/shopspring/decimal"
)

type DepartmentGroup struct {
	Department    string           `json:"department"`
	EmployeeCount int64            `json:"count"`
	AvgSalary     decimal.Decimal  `json:"avg_salary"`
	Employees     []EmployeeInline `json:"employees"`
}

type EmployeeInline struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

type StatusGroup struct {
	Status       project.Status  `json:"status"`
	ProjectCount int64           `json:"count"`
	TotalBudget  decimal.Decimal `json:"total_budget"`
	Projects     []ProjectInline `json:"projects"`
}

type ProjectInline struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

// SalaryStatistics covers the whole employee collection. With zero
// employees the aggregates are null and TotalEmployees is 0.
type SalaryStatistics struct {
	AvgSalary      *decimal.Decimal `json:"avg_salary"`
	MinSalary      *decimal.Decimal `json:"min_salary"`
	MaxSalary      *decimal.Decimal `json:"max_salary"`
	TotalEmployees int64            `json:"total_employees"`
}
