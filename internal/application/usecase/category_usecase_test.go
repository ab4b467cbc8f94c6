package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/usecase"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
)

// fakeCategoryRepo doble en memoria del puerto CategoryRepository.
// withProducts marca categorías cuyo borrado debe fallar con ErrConflict,
// como hace el repositorio real cuando existen productos asociados.
type fakeCategoryRepo struct {
	categories   map[string]*entity.Category
	withProducts map[string]bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:   make(map[string]*entity.Category),
		withProducts: make(map[string]bool),
	}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	if r.withProducts[id] {
		return domain.ErrConflict
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_RecortaNombre(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	resp, err := uc.Create(dto.SaveCategoryRequest{Name: "  Papel  "})
	require.NoError(t, err)
	assert.Equal(t, "Papel", resp.Name, "el nombre se guarda recortado")
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := uc.Create(dto.SaveCategoryRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCategoryCreate_DuplicadoTrasRecorte(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.SaveCategoryRequest{Name: "Papel"})
	require.NoError(t, err)

	// " Papel " recortado coincide con "Papel": duplicado, no se crea.
	_, err = uc.Create(dto.SaveCategoryRequest{Name: " Papel "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.categories, 1)

	// La coincidencia es sensible a mayúsculas: "papel" es otra categoría.
	_, err = uc.Create(dto.SaveCategoryRequest{Name: "papel"})
	assert.NoError(t, err)
	assert.Len(t, repo.categories, 2)
}

func TestCategoryUpdate_MismasReglas(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	a, err := uc.Create(dto.SaveCategoryRequest{Name: "Papel"})
	require.NoError(t, err)
	b, err := uc.Create(dto.SaveCategoryRequest{Name: "Tintas"})
	require.NoError(t, err)

	// Renombrar al nombre de otra categoría existente falla.
	_, err = uc.Update(b.ID, dto.SaveCategoryRequest{Name: " Papel "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Renombrar conservando el propio nombre no cuenta como duplicado.
	resp, err := uc.Update(a.ID, dto.SaveCategoryRequest{Name: "Papel"})
	require.NoError(t, err)
	assert.Equal(t, "Papel", resp.Name)

	_, err = uc.Update("no-existe", dto.SaveCategoryRequest{Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_ConProductosBloqueado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	c, err := uc.Create(dto.SaveCategoryRequest{Name: "Papel"})
	require.NoError(t, err)
	repo.withProducts[c.ID] = true

	err = uc.Delete(c.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"no se borra una categoría con productos")
	assert.Contains(t, repo.categories, c.ID)

	repo.withProducts[c.ID] = false
	require.NoError(t, uc.Delete(c.ID))
	assert.NotContains(t, repo.categories, c.ID)
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
