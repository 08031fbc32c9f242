package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeInput campos de addEmployee y updateEmployee (update sobrescribe todos).
type EmployeeInput struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Gender        string          `json:"gender"`
	Designation   string          `json:"designation"`
	Salary        decimal.Decimal `json:"salary"`
	DateOfJoining string          `json:"date_of_joining"` // YYYY-MM-DD o RFC 3339
	Department    string          `json:"department"`
	EmployeePhoto *string         `json:"employee_photo,omitempty"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID            string          `json:"_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Gender        string          `json:"gender"`
	Designation   string          `json:"designation"`
	Salary        decimal.Decimal `json:"salary"`
	DateOfJoining string          `json:"date_of_joining"`
	Department    string          `json:"department"`
	EmployeePhoto *string         `json:"employee_photo,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EmployeeSearchRequest filtros opcionales de búsqueda (OR).
type EmployeeSearchRequest struct {
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
}
