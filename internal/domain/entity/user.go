package entity

import "time"

// Roles válidos para User. El conjunto es cerrado: cualquier otro valor se
// rechaza en registro y en cambio de rol.
const (
	RoleAdministrador = "administrador"
	RoleEmpleado      = "empleado"
	RoleCajero        = "cajero"
)

// ValidRole indica si role pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdministrador, RoleEmpleado, RoleCajero:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // administrador, empleado, cajero
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
