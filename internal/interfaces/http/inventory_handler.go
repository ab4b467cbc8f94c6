package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/inventory"
)

// InventoryHandler maneja entradas, salidas y el histórico del ledger.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Entry godoc
// @Summary      Registrar entrada de stock
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.MovementRequest  true  "cantidad"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /entrada_producto/{id} [post]
func (h *InventoryHandler) Entry(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterEntry(c.Context(), id, in.Quantity, GetUserID(c)); err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrada registrada"})
}

// Exit godoc
// @Summary      Registrar salida de stock
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.MovementRequest  true  "cantidad"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /salida_producto/{id} [post]
func (h *InventoryHandler) Exit(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterExit(c.Context(), id, in.Quantity, GetUserID(c)); err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salida registrada"})
}

// History godoc
// @Summary      Histórico de movimientos (ledger)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        producto  query  string  false  "ID del producto (vacío = todos)"
// @Param        limit     query  int     false  "Límite"   default(50)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /movimientos [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Query("producto"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
