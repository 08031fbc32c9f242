package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, first_name, last_name, email, gender, designation, salary,
		date_of_joining, department, employee_photo, created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador sobre el pool.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado; employees_email_key detecta el email duplicado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Gender, e.Designation, e.Salary,
		e.DateOfJoining, e.Department, e.EmployeePhoto, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeEmailExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return e, nil
}

// List lista todos los empleados por fecha de creación.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`
	return r.list(ctx, query)
}

// Search filtra por designation OR department; un criterio vacío no participa.
func (r *EmployeeRepo) Search(ctx context.Context, f entity.EmployeeFilter) ([]*entity.Employee, error) {
	if f.IsEmpty() {
		return []*entity.Employee{}, nil
	}
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE ($1 <> '' AND designation = $1) OR ($2 <> '' AND department = $2)
		ORDER BY created_at, id`
	return r.list(ctx, query, f.Designation, f.Department)
}

// Update sobrescribe todos los campos y devuelve created_at con RETURNING.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, last_name = $3, email = $4, gender = $5,
			designation = $6, salary = $7, date_of_joining = $8, department = $9,
			employee_photo = $10, updated_at = $11
		WHERE id = $1
		RETURNING created_at`
	err := r.q.QueryRow(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Gender, e.Designation, e.Salary,
		e.DateOfJoining, e.Department, e.EmployeePhoto, e.UpdatedAt,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrEmployeeEmailExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgxScanner) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Gender, &e.Designation, &e.Salary,
		&e.DateOfJoining, &e.Department, &e.EmployeePhoto, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.DateOfJoining = e.DateOfJoining.UTC()
	return &e, nil
}
