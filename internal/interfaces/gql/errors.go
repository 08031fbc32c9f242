package gql

import (
	"errors"

	"github.com/jhoicas/employee-directory-api/internal/domain"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

// Códigos expuestos en extensions.code.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// Mensajes visibles para el cliente.
const (
	MsgUnauthorized       = "You are not authorized to access this data"
	MsgUserNotFound       = "User not found"
	MsgEmployeeNotFound   = "Employee not found"
	MsgUserExists         = "Username or email already exists"
	MsgEmployeeExists     = "Employee with this email already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInternal           = "internal server error"
)

// apiError implementa gqlerrors.ExtendedError para que graphql-go publique el código.
type apiError struct {
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// toAPIError traduce errores de dominio; cualquier otro se registra y se oculta.
func toAPIError(err error, log *logger.Logger, op string) error {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return &apiError{CodeUnauthenticated, MsgUnauthorized}
	case errors.Is(err, domain.ErrUserNotFound):
		return &apiError{CodeNotFound, MsgUserNotFound}
	case errors.Is(err, domain.ErrNotFound):
		return &apiError{CodeNotFound, MsgEmployeeNotFound}
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return &apiError{CodeConflict, MsgUserExists}
	case errors.Is(err, domain.ErrEmployeeEmailExists):
		return &apiError{CodeConflict, MsgEmployeeExists}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &apiError{CodeInvalidCredentials, MsgInvalidCredentials}
	case errors.As(err, &vErr):
		return &apiError{CodeBadUserInput, "Invalid input: " + vErr.Error()}
	default:
		log.Error().Err(err).Str("operation", op).Msg("error interno en resolver")
		return &apiError{CodeInternal, MsgInternal}
	}
}
