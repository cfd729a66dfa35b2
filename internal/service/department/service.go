package department

import (
	"context"
	"fmt"

	"github.com/corpdesk/company-backend-go/internal/domain/department"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/corpdesk/company-backend-go/internal/repository/postgresql"
	"github.com/corpdesk/company-backend-go/internal/service/integrity"
	"github.com/jackc/pgx/v5"
)

type DepartmentServiceImpl struct {
	db             database.Pool
	departmentRepo department.DepartmentRepository
	guard          *integrity.Guard
}

func NewDepartmentService(db database.Pool, departmentRepo department.DepartmentRepository, guard *integrity.Guard) department.DepartmentService {
	return &DepartmentServiceImpl{
		db:             db,
		departmentRepo: departmentRepo,
		guard:          guard,
	}
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepo.List(ctx)
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if req.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "budget", Message: "budget must not be negative"})
	}

	if len(errs) > 0 {
		return department.Department{}, errs
	}

	newDepartment := department.Department{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
		Manager:     req.Manager,
	}

	return s.departmentRepo.Create(ctx, newDepartment)
}

// Update implements department.DepartmentService. The update is
// partial: absent fields keep their stored values.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	var errs validator.ValidationErrors

	if req.Name != nil && validator.IsEmpty(*req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if req.Budget != nil && req.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "budget", Message: "budget must not be negative"})
	}

	if len(errs) > 0 {
		return department.Department{}, errs
	}

	return s.departmentRepo.Update(ctx, id, req)
}

// Delete implements department.DepartmentService. Deletion is blocked
// while any employee or project still references the department by
// name; the employee check takes precedence.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		dep, err := s.departmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.guard.CanDeleteDepartment(txCtx, dep); err != nil {
			return err
		}

		if err := s.departmentRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete department: %w", err)
		}
		return nil
	})
}
