package repository

import (
	"context"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
)

// AnalyticsRepository consultas read-only para el dashboard administrativo.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	// ListLowStock devuelve los productos con stock por debajo de threshold.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
}
