package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/employee-directory-api/internal/domain/entity"
	"github.com/jhoicas/employee-directory-api/pkg/jwt"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

// ErrBadAuthScheme el header Authorization no tiene la forma "Bearer <token>".
var ErrBadAuthScheme = errors.New("formato esperado: Bearer <token>")

// ResolveIdentity convierte el valor del header Authorization en una identidad verificada.
// Devuelve (identity, true, nil) si el token es válido; (Identity{}, false, nil) si no hay header;
// (Identity{}, false, err) si el header existe pero no se pudo verificar. El error solo explica el false.
func ResolveIdentity(jwtSecret, authHeader string) (entity.Identity, bool, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return entity.Identity{}, false, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return entity.Identity{}, false, ErrBadAuthScheme
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return entity.Identity{}, false, ErrBadAuthScheme
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return entity.Identity{}, false, err
	}
	return entity.Identity{UserID: claims.UserID}, true, nil
}

// AuthMiddleware valida el Bearer Token JWT si existe y deja la identidad en el
// UserContext, que es lo que reciben los resolvers. Nunca rechaza la petición:
// un token ausente o inválido equivale a "sin identidad" y la autorización la
// decide cada operación.
func AuthMiddleware(jwtSecret string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := ResolveIdentity(jwtSecret, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			log.Warn().Err(err).Str("ip", c.IP()).Msg("verificación de token fallida")
		}
		if ok {
			c.SetUserContext(entity.WithIdentity(c.UserContext(), id))
		}
		return c.Next()
	}
}
