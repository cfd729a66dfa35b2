// Package integrity implements the pre-delete referential checks that
// guard destructive mutations across the entity collections. The
// checks are read-then-decide: they never mutate anything themselves.
// Callers run them on the same transaction as the delete so the
// snapshot the check saw is the snapshot the delete applies to.
package integrity

import (
	"context"

	"github.com/corpdesk/company-backend-go/internal/domain/department"
	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/domain/project"
)

type Guard struct {
	employeeRepo employee.EmployeeRepository
	projectRepo  project.ProjectRepository
}

func NewGuard(employeeRepo employee.EmployeeRepository, projectRepo project.ProjectRepository) *Guard {
	return &Guard{
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
	}
}

// CanDeleteEmployee permits deletion unless the employee is manager or
// team member of a project that is still Planned or InProgress.
func (g *Guard) CanDeleteEmployee(ctx context.Context, emp employee.Employee) error {
	active, err := g.projectRepo.FindActiveByMember(ctx, emp.Name)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return nil
	}

	names := make([]string, len(active))
	for i, p := range active {
		names[i] = p.Name
	}
	return &employee.ReferencedByActiveProjectsError{
		EmployeeName:   emp.Name,
		ActiveProjects: names,
	}
}

// CanDeleteProject permits deletion only of projects in a terminal
// status (Completed or Cancelled).
func (g *Guard) CanDeleteProject(p project.Project) error {
	if p.Status.IsTerminal() {
		return nil
	}
	return &project.NotTerminalError{
		ProjectName: p.Name,
		Status:      p.Status,
	}
}

// CanDeleteDepartment permits deletion only when no employee and no
// project references the department by name. The employee check takes
// precedence when both hold.
func (g *Guard) CanDeleteDepartment(ctx context.Context, dep department.Department) error {
	employeeCount, err := g.employeeRepo.CountByDepartment(ctx, dep.Name)
	if err != nil {
		return err
	}
	if employeeCount > 0 {
		return &department.HasEmployeesError{
			DepartmentName: dep.Name,
			EmployeeCount:  employeeCount,
		}
	}

	projectCount, err := g.projectRepo.CountByDepartment(ctx, dep.Name)
	if err != nil {
		return err
	}
	if projectCount > 0 {
		return &department.HasProjectsError{
			DepartmentName: dep.Name,
			ProjectCount:   projectCount,
		}
	}

	return nil
}
