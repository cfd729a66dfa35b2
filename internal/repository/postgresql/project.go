package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/corpdesk/company-backend-go/internal/domain/project"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, name, description, status, budget, department, manager, team, start_date, end_date, created_at, updated_at`

type projectRepositoryImpl struct {
	db database.Pool
}

func NewProjectRepository(db database.Pool) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.Budget,
		&p.Department, &p.Manager, &p.Team, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY name`)
	if err != nil {
		return nil, storeError("list projects", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, storeError("scan project", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("list projects", err)
	}

	return projects, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, storeError("get project by id", err)
	}
	return p, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return project.Project{}, err
	}

	query := `
		INSERT INTO projects (id, name, description, status, budget, department, manager, team, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query,
		id.String(), newProject.Name, newProject.Description, newProject.Status,
		newProject.Budget, newProject.Department, newProject.Manager, newProject.Team,
		newProject.StartDate, newProject.EndDate,
	))
	if err != nil {
		return project.Project{}, storeError("create project", err)
	}
	return created, nil
}

// Update implements project.ProjectRepository. Only the fields set on
// the request are written.
func (r *projectRepositoryImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if req.Name != nil {
		sets = append(sets, "name = "+arg(*req.Name))
	}
	if req.Description != nil {
		sets = append(sets, "description = "+arg(*req.Description))
	}
	if req.Status != nil {
		sets = append(sets, "status = "+arg(*req.Status))
	}
	if req.Budget != nil {
		sets = append(sets, "budget = "+arg(*req.Budget))
	}
	if req.Department != nil {
		sets = append(sets, "department = "+arg(*req.Department))
	}
	if req.Manager != nil {
		sets = append(sets, "manager = "+arg(*req.Manager))
	}
	if req.Team != nil {
		sets = append(sets, "team = "+arg(*req.Team))
	}
	if req.StartDate != nil {
		startDate, _ := validator.IsValidDate(*req.StartDate)
		sets = append(sets, "start_date = "+arg(startDate))
	}
	if req.EndDate != nil {
		endDate, _ := validator.IsValidDate(*req.EndDate)
		sets = append(sets, "end_date = "+arg(endDate))
	}

	query := fmt.Sprintf(`
		UPDATE projects
		SET %s
		WHERE id = %s
		RETURNING `+projectColumns,
		strings.Join(sets, ", "), arg(id))

	updated, err := scanProject(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, storeError("update project", err)
	}
	return updated, nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return storeError("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// FindActiveByMember implements project.ProjectRepository.
func (r *projectRepositoryImpl) FindActiveByMember(ctx context.Context, employeeName string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE (manager = $1 OR $1 = ANY(team))
			AND status IN ($2, $3)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, employeeName, project.StatusPlanned, project.StatusInProgress)
	if err != nil {
		return nil, storeError("find active projects by member", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, storeError("scan project", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("find active projects by member", err)
	}

	return projects, nil
}

// CountByDepartment implements project.ProjectRepository.
func (r *projectRepositoryImpl) CountByDepartment(ctx context.Context, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE department = $1`, department).Scan(&count)
	if err != nil {
		return 0, storeError("count projects by department", err)
	}
	return count, nil
}
