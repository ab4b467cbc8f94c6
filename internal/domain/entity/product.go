package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock solo cambia vía movimientos (entrada/salida) o por edición directa de
// un administrador; esta última rompe deliberadamente el histórico del ledger.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta, >= 0
	Stock      int             // existencias actuales, nunca negativo
	MinStock   int             // umbral de reposición
	CategoryID string
	ImageURL   string // vacío si no tiene imagen
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LowStock indica si el producto está por debajo de su umbral de reposición.
func (p *Product) LowStock() bool {
	return p.Stock < p.MinStock
}
