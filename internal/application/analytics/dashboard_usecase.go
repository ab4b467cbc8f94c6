// Package analytics contiene el caso de uso del panel administrativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/usecase"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

// LowStockThreshold umbral del listado de stock bajo en el dashboard.
const LowStockThreshold = 5

// ReportGenerator puerto para la generación del reporte de inventario en PDF.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, appName string, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}

// DashboardUseCase genera el resumen del inventario para el administrador.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) y
// ProductRepository para el reporte PDF.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	reportGen     ReportGenerator
	appName       string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	reportGen ReportGenerator,
	appName string,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		reportGen:     reportGen,
		appName:       appName,
	}
}

// InventoryReportPDF genera el reporte de inventario completo en PDF,
// ordenado por categoría como el listado de productos.
func (uc *DashboardUseCase) InventoryReportPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List(repository.ProductOrderCategoria)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}
	return uc.reportGen.GenerateInventoryReport(ctx, uc.appName, products, time.Now())
}

// GetSummary construye el DashboardSummary.
//
// Cuatro llamadas en paralelo:
//  1. CountProducts
//  2. CountCategories
//  3. CountUsers
//  4. ListLowStock(5)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	type countResult struct {
		n   int
		err error
	}
	type lowStockResult struct {
		products []dto.ProductResponse
		err      error
	}

	productsCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	usersCh := make(chan countResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCategories(ctx)
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.ListLowStock(ctx, LowStockThreshold)
		if err != nil {
			lowCh <- lowStockResult{nil, err}
			return
		}
		out := make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			out = append(out, *usecase.ToProductResponse(p))
		}
		lowCh <- lowStockResult{out, nil}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	users := <-usersCh
	low := <-lowCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: total categorías: %w", categories.err)
	}
	if users.err != nil {
		return nil, fmt.Errorf("dashboard: total usuarios: %w", users.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	return &dto.DashboardSummary{
		TotalProducts:   products.n,
		TotalCategories: categories.n,
		TotalUsers:      users.n,
		LowStock:        low.products,
	}, nil
}
