package employee

import (
	"context"
	"fmt"

	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/corpdesk/company-backend-go/internal/repository/postgresql"
	"github.com/corpdesk/company-backend-go/internal/service/integrity"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db           database.Pool
	employeeRepo employee.EmployeeRepository
	guard        *integrity.Guard
}

func NewEmployeeService(db database.Pool, employeeRepo employee.EmployeeRepository, guard *integrity.Guard) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		guard:        guard,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(req.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(req.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if req.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if req.Phone != "" && !validator.IsValidPhoneNumber(req.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	hireDate, ok := validator.IsValidDate(req.HireDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return employee.Employee{}, errs
	}

	newEmployee := employee.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     req.Skills,
		HireDate:   hireDate,
	}
	if newEmployee.Skills == nil {
		newEmployee.Skills = []string{}
	}

	return s.employeeRepo.Create(ctx, newEmployee)
}

// Update implements employee.EmployeeService. The update is partial:
// absent fields keep their stored values.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var errs validator.ValidationErrors

	if req.Name != nil && validator.IsEmpty(*req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if req.Position != nil && validator.IsEmpty(*req.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must not be empty"})
	}
	if req.Department != nil && validator.IsEmpty(*req.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not be empty"})
	}
	if req.Salary != nil && req.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if req.Email != nil && !validator.IsValidEmail(*req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if req.Phone != nil && *req.Phone != "" && !validator.IsValidPhoneNumber(*req.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if req.HireDate != nil {
		if _, ok := validator.IsValidDate(*req.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return employee.Employee{}, errs
	}

	return s.employeeRepo.Update(ctx, id, req)
}

// Delete implements employee.EmployeeService. The integrity check and
// the delete run on one transaction, so the delete applies to the
// snapshot the check saw.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.employeeRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.guard.CanDeleteEmployee(txCtx, emp); err != nil {
			return err
		}

		if err := s.employeeRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}

// Search implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, filter employee.SearchFilter) ([]employee.Employee, error) {
	return s.employeeRepo.Search(ctx, filter)
}
