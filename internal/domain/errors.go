package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// Variantes concretas; errors.Is las reconoce también como la categoría general.
var (
	ErrUserNotFound        = fmt.Errorf("usuario no encontrado: %w", ErrNotFound)
	ErrEmployeeNotFound    = fmt.Errorf("empleado no encontrado: %w", ErrNotFound)
	ErrUserAlreadyExists   = fmt.Errorf("username o email ya registrado: %w", ErrConflict)
	ErrEmployeeEmailExists = fmt.Errorf("email de empleado ya registrado: %w", ErrConflict)
)

// ValidationError describe un campo inválido y se reconoce como ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
