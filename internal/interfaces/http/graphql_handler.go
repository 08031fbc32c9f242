package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

// GraphQLRequest cuerpo estándar de GraphQL sobre HTTP.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type requestError struct {
	Message string `json:"message"`
}

// GraphQLHandler ejecuta una operación GraphQL por petición.
type GraphQLHandler struct {
	schema graphql.Schema
	log    *logger.Logger
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema, log *logger.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, log: log}
}

// Execute POST /graphql. Responde 200 con {data, errors} incluso si hay errores de
// ejecución; solo un cuerpo ilegible o sin query devuelve 400.
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var in GraphQLRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []requestError{{Message: "cuerpo JSON inválido"}},
		})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []requestError{{Message: "query es requerido"}},
		})
	}
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  in.Query,
		VariableValues: in.Variables,
		OperationName:  in.OperationName,
		Context:        c.UserContext(),
	})
	if result.HasErrors() {
		h.log.Debug().Str("operation", in.OperationName).Int("errors", len(result.Errors)).Msg("operación GraphQL con errores")
	}
	return c.JSON(result)
}
