package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/employee-directory-api/internal/application/dto"
	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/internal/domain/repository"
	"github.com/jhoicas/employee-directory-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: signup y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithHashCost cambia el coste de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Signup hashea el password con bcrypt y persiste el usuario con username y email tal cual.
// La unicidad de username/email la garantiza el almacén: no hay consulta previa.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (string, error) {
	username, email := in.Username, in.Email
	switch {
	case strings.TrimSpace(username) == "":
		return "", domain.Invalid("username", "is required")
	case strings.TrimSpace(email) == "":
		return "", domain.Invalid("email", "is required")
	case !strings.Contains(email, "@"):
		return "", domain.Invalid("email", "invalid format")
	case in.Password == "":
		return "", domain.Invalid("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.Invalid("password", "must be at most 72 bytes")
		}
		return "", err
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return dto.MsgUserCreated, nil
}

// Login verifica username/password y genera un JWT con el id del usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
