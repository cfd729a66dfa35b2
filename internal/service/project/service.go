package project

import (
	"context"
	"fmt"

	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/corpdesk/company-backend-go/internal/repository/postgresql"
	"github.com/corpdesk/company-backend-go/internal/service/integrity"
	"github.com/jackc/pgx/v5"
)

type ProjectServiceImpl struct {
	db          database.Pool
	projectRepo project.ProjectRepository
	guard       *integrity.Guard
}

func NewProjectService(db database.Pool, projectRepo project.ProjectRepository, guard *integrity.Guard) project.ProjectService {
	return &ProjectServiceImpl{
		db:          db,
		projectRepo: projectRepo,
		guard:       guard,
	}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.Project, error) {
	return s.projectRepo.List(ctx)
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !req.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Planned, InProgress, Completed or Cancelled"})
	}
	if req.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "budget", Message: "budget must not be negative"})
	}
	if validator.IsEmpty(req.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	startDate, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}

	newProject := project.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Budget:      req.Budget,
		Department:  req.Department,
		Manager:     req.Manager,
		Team:        req.Team,
		StartDate:   startDate,
	}
	if req.EndDate != nil {
		endDate, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		} else {
			newProject.EndDate = &endDate
		}
	}

	if len(errs) > 0 {
		return project.Project{}, errs
	}
	if newProject.Team == nil {
		newProject.Team = []string{}
	}

	return s.projectRepo.Create(ctx, newProject)
}

// Update implements project.ProjectService. The update is partial:
// absent fields keep their stored values.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	var errs validator.ValidationErrors

	if req.Name != nil && validator.IsEmpty(*req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if req.Status != nil && !req.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Planned, InProgress, Completed or Cancelled"})
	}
	if req.Budget != nil && req.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "budget", Message: "budget must not be negative"})
	}
	if req.Department != nil && validator.IsEmpty(*req.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not be empty"})
	}
	if req.StartDate != nil {
		if _, ok := validator.IsValidDate(*req.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if req.EndDate != nil {
		if _, ok := validator.IsValidDate(*req.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return project.Project{}, errs
	}

	return s.projectRepo.Update(ctx, id, req)
}

// Delete implements project.ProjectService. Deletion is blocked while
// the project is in a non-terminal status.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		p, err := s.projectRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.guard.CanDeleteProject(p); err != nil {
			return err
		}

		if err := s.projectRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}
