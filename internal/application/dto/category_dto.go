package dto

import "time"

// SaveCategoryRequest datos para crear o editar una categoría.
type SaveCategoryRequest struct {
	Name string `json:"nombre"`
}

// CategoryResponse categoría para listados.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
