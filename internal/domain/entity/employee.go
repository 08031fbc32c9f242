package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de date_of_joining en la API.
const DateLayout = "2006-01-02"

// Employee representa un registro del directorio de empleados.
// Update sobrescribe todos los campos: un EmployeePhoto nil borra la foto previa.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string // único, comparación exacta
	Gender        string
	Designation   string
	Salary        decimal.Decimal
	DateOfJoining time.Time // fecha (UTC, sin hora)
	Department    string
	EmployeePhoto *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployeeFilter criterio OR de searchEmployeeByDesignationOrDepartment.
// Un campo vacío no participa del filtro.
type EmployeeFilter struct {
	Designation string
	Department  string
}

// IsEmpty indica que no hay ningún criterio (el resultado es vacío, no todo el directorio).
func (f EmployeeFilter) IsEmpty() bool {
	return f.Designation == "" && f.Department == ""
}
