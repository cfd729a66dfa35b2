package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/corpdesk/company-backend-go/internal/domain/department"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const departmentColumns = `id, name, description, location, budget, manager, created_at, updated_at`

type departmentRepositoryImpl struct {
	db database.Pool
}

func NewDepartmentRepository(db database.Pool) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.Location, &d.Budget,
		&d.Manager, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, storeError("list departments", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, storeError("scan department", err)
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("list departments", err)
	}

	return departments, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, storeError("get department by id", err)
	}
	return d, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return department.Department{}, err
	}

	query := `
		INSERT INTO departments (id, name, description, location, budget, manager)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + departmentColumns

	created, err := scanDepartment(q.QueryRow(ctx, query,
		id.String(), newDepartment.Name, newDepartment.Description,
		newDepartment.Location, newDepartment.Budget, newDepartment.Manager,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, storeError("create department", err)
	}
	return created, nil
}

// Update implements department.DepartmentRepository. Only the fields
// set on the request are written.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
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
	if req.Location != nil {
		sets = append(sets, "location = "+arg(*req.Location))
	}
	if req.Budget != nil {
		sets = append(sets, "budget = "+arg(*req.Budget))
	}
	if req.Manager != nil {
		sets = append(sets, "manager = "+arg(*req.Manager))
	}

	query := fmt.Sprintf(`
		UPDATE departments
		SET %s
		WHERE id = %s
		RETURNING `+departmentColumns,
		strings.Join(sets, ", "), arg(id))

	updated, err := scanDepartment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, storeError("update department", err)
	}
	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return storeError("delete department", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
