package dto

// ChangeRoleRequest nuevo rol para un usuario.
type ChangeRoleRequest struct {
	Role string `json:"rol"`
}
