package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/usecase"
)

// UserHandler administración de usuarios (solo administrador).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        orden  query  string  false  "jerarquia | nombre | id"  default(jerarquia)
// @Success      200    {array}  dto.UserResponse
// @Router       /usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("orden", "jerarquia"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ChangeRole godoc
// @Summary      Cambiar rol de un usuario (nunca el propio)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.ChangeRoleRequest  true  "rol"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "operación sobre el propio usuario"
// @Router       /cambiar_rol/{id} [post]
func (h *UserHandler) ChangeRole(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangeRole(GetUserID(c), id, in.Role); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "rol actualizado correctamente"})
}

// Delete godoc
// @Summary      Eliminar usuario (nunca el propio)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "operación sobre el propio usuario"
// @Router       /eliminar_usuario/{id} [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado correctamente"})
}
