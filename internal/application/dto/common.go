package dto

// ErrorResponse cuerpo de error HTTP fuera de GraphQL (rutas inexistentes).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
