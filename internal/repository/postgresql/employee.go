package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/corpdesk/company-backend-go/internal/domain/employee"
	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/corpdesk/company-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, name, position, department, salary, email, phone, skills, hire_date, created_at, updated_at`

type employeeRepositoryImpl struct {
	db database.Pool
}

func NewEmployeeRepository(db database.Pool) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Position, &emp.Department, &emp.Salary,
		&emp.Email, &emp.Phone, &emp.Skills, &emp.HireDate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, storeError("scan employee", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("list employees", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, storeError("get employee by id", err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (id, name, position, department, salary, email, phone, skills, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		id.String(), newEmployee.Name, newEmployee.Position, newEmployee.Department,
		newEmployee.Salary, newEmployee.Email, newEmployee.Phone, newEmployee.Skills,
		newEmployee.HireDate,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, storeError("create employee", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. Only the fields set
// on the request are written.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if req.Name != nil {
		sets = append(sets, "name = "+arg(*req.Name))
	}
	if req.Position != nil {
		sets = append(sets, "position = "+arg(*req.Position))
	}
	if req.Department != nil {
		sets = append(sets, "department = "+arg(*req.Department))
	}
	if req.Salary != nil {
		sets = append(sets, "salary = "+arg(*req.Salary))
	}
	if req.Email != nil {
		sets = append(sets, "email = "+arg(*req.Email))
	}
	if req.Phone != nil {
		sets = append(sets, "phone = "+arg(*req.Phone))
	}
	if req.Skills != nil {
		sets = append(sets, "skills = "+arg(*req.Skills))
	}
	if req.HireDate != nil {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		sets = append(sets, "hire_date = "+arg(hireDate))
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = %s
		RETURNING `+employeeColumns,
		strings.Join(sets, ", "), arg(id))

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, storeError("update employee", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return storeError("delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Search implements employee.EmployeeRepository. Name and position are
// case-insensitive substring matches, department is exact.
func (e *employeeRepositoryImpl) Search(ctx context.Context, filter employee.SearchFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Name != "" {
		conditions = append(conditions, "name ILIKE "+arg("%"+filter.Name+"%"))
	}
	if filter.Department != "" {
		conditions = append(conditions, "department = "+arg(filter.Department))
	}
	if filter.Position != "" {
		conditions = append(conditions, "position ILIKE "+arg("%"+filter.Position+"%"))
	}

	query := fmt.Sprintf(`SELECT `+employeeColumns+` FROM employees WHERE %s ORDER BY name`,
		strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("search employees", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, storeError("scan employee", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("search employees", err)
	}

	return employees, nil
}

// CountByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByDepartment(ctx context.Context, department string) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department = $1`, department).Scan(&count)
	if err != nil {
		return 0, storeError("count employees by department", err)
	}
	return count, nil
}
