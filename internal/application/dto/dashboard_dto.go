package dto

// DashboardSummary resumen para el panel administrativo.
type DashboardSummary struct {
	TotalProducts   int               `json:"total_productos"`
	TotalCategories int               `json:"total_categorias"`
	TotalUsers      int               `json:"total_usuarios"`
	LowStock        []ProductResponse `json:"productos_bajos"`
}
