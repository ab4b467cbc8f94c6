package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/usecase"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP para Category (solo administrador).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        orden  query  string  false  "id | nombre"  default(nombre)
// @Success      200    {array}  dto.CategoryResponse
// @Router       /categorias [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("orden", "nombre"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCategoryRequest  true  "nombre"
// @Success      201   {object}  dto.CategoryResponse
// @Success      200   {object}  dto.MessageResponse  "ya existía una categoría con ese nombre"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /agregar_categoria [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		// El duplicado es un resultado informativo, no un fallo: no se crea
		// nada y se responde 200 con el aviso.
		if errors.Is(err, domain.ErrDuplicate) {
			return c.JSON(dto.MessageResponse{Message: "ya hay una categoría existente con ese nombre"})
		}
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.SaveCategoryRequest  true  "nombre"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /editar_categoria/{id} [post]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (bloqueado si tiene productos)
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /eliminar_categoria/{id} [post]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada correctamente"})
}
