package dto

// SignupRequest entrada de signup (password en texto, se hashea en el use case).
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT opaco.
type LoginResponse struct {
	Token string `json:"token"`
}

// Mensajes devueltos por las operaciones que no retornan entidad.
const (
	MsgUserCreated     = "User created successfully"
	MsgEmployeeDeleted = "Employee deleted successfully"
)
