package repository

import "github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"

// Órdenes aceptados por ProductRepository.List.
const (
	ProductOrderNombre    = "nombre"
	ProductOrderStock     = "stock"
	ProductOrderPrecio    = "precio"
	ProductOrderCategoria = "categoria"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); solo tiene
	// sentido dentro de una transacción del TxRunner.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija las existencias; usado por el motor de movimientos con
	// la fila ya bloqueada.
	UpdateStock(id string, stock int) error
	Delete(id string) error
	List(order string) ([]*entity.Product, error)
	// ListInStock devuelve los productos con stock > 0 (catálogo público).
	ListInStock() ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
}
