package dto

import "time"

// RegisterRequest datos de registro de personal. La clave de registro es la
// misma para todo el personal autorizado (config REGISTER_KEY).
type RegisterRequest struct {
	Username    string `json:"nombre_usuario"`
	Password    string `json:"contrasena"`
	Role        string `json:"rol"` // opcional; por defecto empleado
	RegisterKey string `json:"clave_registro"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"nombre_usuario"`
	Password string `json:"contrasena"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"nombre_usuario"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
