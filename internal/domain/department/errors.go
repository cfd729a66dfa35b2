package department

import (
	"errors"
	"fmt"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameExists         = errors.New("department name already exists")
)

// HasEmployeesError blocks deletion of a department that still has
// employees assigned to it.
type HasEmployeesError struct {
	DepartmentName string
	EmployeeCount  int64
}

func (e *HasEmployeesError) Error() string {
	return fmt.Sprintf("cannot delete department %q: %d employee(s) assigned",
		e.DepartmentName, e.EmployeeCount)
}

// HasProjectsError blocks deletion of a department that still has
// projects referencing it. The employee check takes precedence when
// both hold.
type HasProjectsError struct {
	DepartmentName string
	ProjectCount   int64
}

func (e *HasProjectsError) Error() string {
	return fmt.Sprintf("cannot delete department %q: %d project(s) reference it",
		e.DepartmentName, e.ProjectCount)
}
