package response

import (
	"errors"
	"net/http"

	"github.com/corpdesk/company-backend-go/internal/domain/auth"
	"github.com/corpdesk/company-backend-go/internal/domain/department"
	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/domain/user"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors carry a field map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]interface{}, len(validationErrs))
		for field, msg := range validationErrs.ToMap() {
			details[field] = msg
		}
		ValidationError(w, details)
		return
	}

	// Integrity-guard blocks carry structured detail
	var refErr *employee.ReferencedByActiveProjectsError
	if errors.As(err, &refErr) {
		Conflict(w, "REFERENCED_BY_ACTIVE_PROJECTS", refErr.Error(), map[string]interface{}{
			"active_projects_count": refErr.Count(),
			"active_projects":       refErr.ActiveProjects,
		})
		return
	}
	var termErr *project.NotTerminalError
	if errors.As(err, &termErr) {
		Conflict(w, "PROJECT_NOT_TERMINAL", termErr.Error(), map[string]interface{}{
			"current_status": termErr.Status,
		})
		return
	}
	var deptEmpErr *department.HasEmployeesError
	if errors.As(err, &deptEmpErr) {
		Conflict(w, "DEPARTMENT_HAS_EMPLOYEES", deptEmpErr.Error(), map[string]interface{}{
			"employees_count": deptEmpErr.EmployeeCount,
		})
		return
	}
	var deptProjErr *department.HasProjectsError
	if errors.As(err, &deptProjErr) {
		Conflict(w, "DEPARTMENT_HAS_PROJECTS", deptProjErr.Error(), map[string]interface{}{
			"projects_count": deptProjErr.ProjectCount,
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "UNAUTHENTICATED", err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "INVALID_CREDENTIAL", err.Error())
	case errors.Is(err, auth.ErrPermissionDenied):
		Forbidden(w, err.Error())

	// Not-found errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Uniqueness conflicts
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "EMAIL_EXISTS", "Email already registered", nil)
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "DEPARTMENT_NAME_EXISTS", "Department name already exists", nil)

	// Store failures stay generic; driver detail never reaches the caller
	case errors.Is(err, database.ErrUnavailable):
		StoreUnavailable(w)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
