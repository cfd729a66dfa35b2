package project

import (
	"errors"
	"fmt"
)

var ErrProjectNotFound = errors.New("project not found")

// NotTerminalError blocks deletion of a project that is still Planned
// or InProgress.
type NotTerminalError struct {
	ProjectName string
	Status      Status
}

func (e *NotTerminalError) Error() string {
	return fmt.Sprintf("cannot delete project %q with status %q: complete or cancel it first",
		e.ProjectName, e.Status)
}
