package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest datos para crear o editar un producto. En la edición el
// administrador puede fijar Stock directamente (reset deliberado del ledger).
type SaveProductRequest struct {
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"stock_minimo"`
	CategoryID string          `json:"categoria_id"`
	ImageURL   string          `json:"imagen_url"`
}

// ProductResponse producto para listados y catálogo.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"stock_minimo"`
	CategoryID string          `json:"categoria_id"`
	ImageURL   string          `json:"imagen_url,omitempty"`
	LowStock   bool            `json:"stock_bajo"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
