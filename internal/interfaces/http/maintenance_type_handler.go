package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain"
)

// MaintenanceTypeHandler catálogo de tipos de mantenimiento (protegido).
type MaintenanceTypeHandler struct {
	uc *usecase.MaintenanceTypeUseCase
}

// NewMaintenanceTypeHandler construye el handler.
func NewMaintenanceTypeHandler(uc *usecase.MaintenanceTypeUseCase) *MaintenanceTypeHandler {
	return &MaintenanceTypeHandler{uc: uc}
}

// Create registra un tipo de mantenimiento.
// POST /api/tipos-mantenimiento
func (h *MaintenanceTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// List lista los tipos activos.
// GET /api/tipos-mantenimiento
func (h *MaintenanceTypeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
