package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo (solo administrador muta).
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// validate aplica las reglas comunes de creación y edición: nombre requerido,
// precio/stock/umbral no negativos y categoría existente.
func (uc *ProductUseCase) validate(in dto.SaveProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	if in.CategoryID == "" {
		return domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		CategoryID: in.CategoryID,
		ImageURL:   strings.TrimSpace(in.ImageURL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update edita todos los campos del producto, incluido Stock. Un cambio de
// stock por esta vía es un reset deliberado: el ledger de movimientos no lo
// registra y el invariante entradas-salidas vale solo entre resets.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Price = in.Price
	product.Stock = in.Stock
	product.MinStock = in.MinStock
	product.CategoryID = in.CategoryID
	product.ImageURL = strings.TrimSpace(in.ImageURL)
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete elimina el producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product), nil
}

// List lista productos ordenados (nombre, stock, precio o categoria).
func (uc *ProductUseCase) List(order string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(order)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListPublic catálogo público: solo productos con existencias.
func (uc *ProductUseCase) ListPublic() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListInStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		CategoryID: p.CategoryID,
		ImageURL:   p.ImageURL,
		LowStock:   p.LowStock(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *ToProductResponse(p))
	}
	return out
}
