package repository

import "github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"

// Órdenes aceptados por UserRepository.List.
const (
	UserOrderJerarquia = "jerarquia"
	UserOrderNombre    = "nombre"
	UserOrderID        = "id"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateRole(id, role string) error
	Delete(id string) error
	List(order string) ([]*entity.User, error)
}
