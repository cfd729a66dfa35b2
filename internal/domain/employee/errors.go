package employee

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
)

// ReferencedByActiveProjectsError blocks deletion of an employee who
// is manager or team member of a project in a non-terminal status.
type ReferencedByActiveProjectsError struct {
	EmployeeName   string
	ActiveProjects []string
}

func (e *ReferencedByActiveProjectsError) Error() string {
	return fmt.Sprintf("cannot delete employee %q: referenced by %d active project(s): %s",
		e.EmployeeName, len(e.ActiveProjects), strings.Join(e.ActiveProjects, ", "))
}

func (e *ReferencedByActiveProjectsError) Count() int {
	return len(e.ActiveProjects)
}
