package repository

import "github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"

// Órdenes aceptados por CategoryRepository.List.
const (
	CategoryOrderID     = "id"
	CategoryOrderNombre = "nombre"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// Delete falla con domain.ErrConflict si existen productos en la categoría.
	Delete(id string) error
	List(order string) ([]*entity.Category, error)
}
