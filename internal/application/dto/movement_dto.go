package dto

import "time"

// MovementRequest cantidad para una entrada o salida de stock.
type MovementRequest struct {
	Quantity int `json:"cantidad"`
}

// MovementResponse registro del ledger.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"producto_id"`
	Type      string    `json:"tipo"` // ENTRADA, SALIDA
	Quantity  int       `json:"cantidad"`
	UserID    string    `json:"usuario_id,omitempty"`
	CreatedAt time.Time `json:"fecha"`
}
