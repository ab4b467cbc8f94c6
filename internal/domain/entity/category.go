package entity

import "time"

// Category representa una categoría de productos. Name se guarda recortado
// (sin espacios en los extremos) y es único con coincidencia exacta.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
