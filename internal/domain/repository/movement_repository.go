package repository

import "github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"

// MovementRepository define el puerto del ledger de movimientos.
// Es append-only: no existen Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
