package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/manufacturing"
)

// CompositeHandler maneja los procesos de fabricación (protegido).
type CompositeHandler struct {
	uc *manufacturing.UseCase
}

// NewCompositeHandler construye el handler.
func NewCompositeHandler(uc *manufacturing.UseCase) *CompositeHandler {
	return &CompositeHandler{uc: uc}
}

// Start godoc
// @Summary      Iniciar proceso de fabricación
// @Description  Reserva la materia prima en la bodega base del empleado y crea el proceso, todo-o-nada.
// @Tags         composites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartCompositeRequest  true  "Equipo, recurso y cantidad"
// @Success      201   {object}  dto.CompositeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/composites [post]
func (h *CompositeHandler) Start(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.StartCompositeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EquipmentID == "" || in.ResourceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "equipment_id y resource_id son requeridos"})
	}
	out, err := h.uc.StartComposite(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// End godoc
// @Summary      Finalizar proceso de fabricación
// @Description  Cierra el proceso una sola vez. Un segundo intento responde success=false sin error.
// @Tags         composites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proceso"
// @Param        body  body  dto.EndCompositeRequest  true  "Producto obtenido y cantidad"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/composites/{id}/end [post]
func (h *CompositeHandler) End(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.EndCompositeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.EndComposite(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consultar proceso de fabricación
// @Tags         composites
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proceso"
// @Success      200  {object}  dto.CompositeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/composites/{id} [get]
func (h *CompositeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetComposite(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListRunning godoc
// @Summary      Listar procesos en curso
// @Tags         composites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CompositeResponse
// @Router       /api/composites [get]
func (h *CompositeHandler) ListRunning(c *fiber.Ctx) error {
	out, err := h.uc.ListRunning(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
