package repository

import (
	"context"

	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	// Create persiste el empleado; email duplicado -> domain.ErrEmployeeEmailExists.
	Create(ctx context.Context, employee *entity.Employee) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	// Search devuelve los empleados que cumplen designation OR department.
	Search(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error)
	// Update sobrescribe todos los campos salvo ID y CreatedAt, y rellena CreatedAt
	// con el valor almacenado. Sin coincidencia -> domain.ErrEmployeeNotFound.
	Update(ctx context.Context, employee *entity.Employee) error
	// Delete sin coincidencia -> domain.ErrEmployeeNotFound.
	Delete(ctx context.Context, id string) error
}
