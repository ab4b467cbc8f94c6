package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: este adaptador no expone
// UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anota un movimiento en el ledger.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, user_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos de un producto, el más reciente primero.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, user_id, created_at
		FROM stock_movements WHERE product_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, productID)
}

// List devuelve el ledger completo paginado, el más reciente primero.
func (r *MovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, user_id, created_at
		FROM stock_movements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

func (r *MovementRepo) scanMany(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var userID sql.NullString
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &userID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.UserID = userID.String
		list = append(list, &m)
	}
	return list, rows.Err()
}
