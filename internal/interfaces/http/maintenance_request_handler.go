package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain"
)

// MaintenanceRequestHandler solicitudes de mantenimiento (protegido).
type MaintenanceRequestHandler struct {
	uc *usecase.MaintenanceRequestUseCase
}

// NewMaintenanceRequestHandler construye el handler.
func NewMaintenanceRequestHandler(uc *usecase.MaintenanceRequestUseCase) *MaintenanceRequestHandler {
	return &MaintenanceRequestHandler{uc: uc}
}

// Create registra una solicitud contra una matrícula.
// POST /api/solicitudes
func (h *MaintenanceRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matrícula, tipo activo y cédula del solicitante son requeridos; prioridad debe ser baja, media o alta"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "matrícula no encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código de solicitud en conflicto, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las solicitudes con su contexto.
// GET /api/solicitudes
func (h *MaintenanceRequestHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Search busca por matrícula, cédula del solicitante o código.
// GET /api/solicitudes/buscar/:termino
func (h *MaintenanceRequestHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.Context(), c.Params("termino"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "término de búsqueda requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByCodigo obtiene una solicitud.
// GET /api/solicitudes/:codigo
func (h *MaintenanceRequestHandler) GetByCodigo(c *fiber.Ctx) error {
	s, err := h.uc.GetByCodigo(c.Context(), c.Params("codigo"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(s)
}

// UpdateEstado cambia el estado de la solicitud.
// PUT /api/solicitudes/:codigo/estado
func (h *MaintenanceRequestHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateSolicitudEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(c.Context(), c.Params("codigo"), in.Estado); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado debe ser pendiente, en_proceso, completado o cancelada"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Estado actualizado"})
}
