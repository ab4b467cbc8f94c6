package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías (solo administrador).
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create recorta el nombre y crea la categoría. Nombre vacío tras recortar →
// domain.ErrInvalidInput. Si ya existe una categoría con el mismo nombre
// recortado (coincidencia exacta, sensible a mayúsculas) devuelve
// domain.ErrDuplicate sin crear nada; el handler lo reporta como resultado
// informativo, no como fallo.
func (uc *CategoryUseCase) Create(in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update renombra la categoría con las mismas reglas de recorte y duplicado.
func (uc *CategoryUseCase) Update(id string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if name != category.Name {
		existing, err := uc.categoryRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	category.Name = name
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría. domain.ErrNotFound si no existe;
// domain.ErrConflict si tiene productos (el repositorio bloquea el borrado
// para no dejar productos huérfanos).
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// List lista categorías ordenadas (id o nombre).
func (uc *CategoryUseCase) List(order string) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(order)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
