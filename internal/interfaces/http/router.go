package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/employee-directory-api/internal/application/dto"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Schema      graphql.Schema
	GraphQLPath string
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	path := deps.GraphQLPath
	if path == "" {
		path = "/graphql"
	}
	// El Auth Gate no rechaza: signup y login son públicos y el resto valida la identidad.
	gqlHandler := NewGraphQLHandler(deps.Schema, deps.Log)
	app.Post(path, AuthMiddleware(deps.JWTSecret, deps.Log.Named("auth")), gqlHandler.Execute)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "ruta no encontrada: " + c.Method() + " " + c.Path(),
		})
	})
}
