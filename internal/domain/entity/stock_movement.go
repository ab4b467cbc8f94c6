package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementEntrada = "ENTRADA" // aumenta existencias
	MovementSalida  = "SALIDA"  // disminuye existencias
)

// StockMovement representa un movimiento del ledger de inventario.
// Es append-only: una vez creado nunca se edita ni se elimina.
// UserID queda vacío si el usuario que lo registró fue eliminado después.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // ENTRADA, SALIDA
	Quantity  int    // siempre positivo; el tipo determina el signo
	UserID    string
	CreatedAt time.Time
}
