package entity

import "time"

// User representa una cuenta que puede iniciar sesión en el directorio.
type User struct {
	ID           string
	Username     string // único
	Email        string // único, comparación exacta
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
