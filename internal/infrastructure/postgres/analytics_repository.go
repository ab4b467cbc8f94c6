package postgres

import (
	"context"
	"fmt"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// CountProducts total de productos del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, "products")
}

// CountCategories total de categorías.
func (r *AnalyticsRepo) CountCategories(ctx context.Context) (int, error) {
	return r.count(ctx, "categories")
}

// CountUsers total de usuarios del personal.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "users")
}

// ListLowStock devuelve los productos con stock por debajo de threshold.
func (r *AnalyticsRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, min_stock, category_id, image_url, created_at, updated_at
		FROM products WHERE stock < $1 ORDER BY stock, name`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.MinStock,
			&p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
