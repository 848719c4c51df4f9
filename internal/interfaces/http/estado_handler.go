package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/remitospro/remitos-api/internal/application/dto"
	"github.com/remitospro/remitos-api/internal/application/usecase"
	"github.com/remitospro/remitos-api/internal/domain"
)

// EstadoHandler maneja los estados de remito configurables de la empresa.
type EstadoHandler struct {
	uc *usecase.EstadoUseCase
}

// NewEstadoHandler construye el handler de estados.
func NewEstadoHandler(uc *usecase.EstadoUseCase) *EstadoHandler {
	return &EstadoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estado de remito
// @Tags         estados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEstadoRequest  true  "Datos del estado"
// @Success      201   {object}  dto.EstadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estados [post]
func (h *EstadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener estado por ID
// @Tags         estados
// @Produce      json
// @Param        id  path  string  true  "ID del estado"
// @Success      200  {object}  dto.EstadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estados/{id} [get]
func (h *EstadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar estados de la empresa (ordenados por sort_order)
// @Tags         estados
// @Produce      json
// @Success      200  {array}  dto.EstadoResponse
// @Router       /api/estados [get]
func (h *EstadoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado
// @Tags         estados
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del estado"
// @Param        body  body  dto.UpdateEstadoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EstadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estados/{id} [put]
func (h *EstadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estado (no permite borrar el default)
// @Tags         estados
// @Param        id  path  string  true  "ID del estado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/estados/{id} [delete]
func (h *EstadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estado no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DEFAULT_ESTADO", Message: "no se puede eliminar el estado default de la empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
