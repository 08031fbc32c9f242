package repository

import (
	"context"

	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario; si username o email ya existen devuelve domain.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername devuelve (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
