package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain"
)

// MaintenanceReportHandler reportes de mantenimiento (protegido).
type MaintenanceReportHandler struct {
	uc *usecase.MaintenanceReportUseCase
}

// NewMaintenanceReportHandler construye el handler.
func NewMaintenanceReportHandler(uc *usecase.MaintenanceReportUseCase) *MaintenanceReportHandler {
	return &MaintenanceReportHandler{uc: uc}
}

// Create registra el reporte del trabajo y cierra la solicitud.
// POST /api/reportes
func (h *MaintenanceReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReporteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código de solicitud y descripción del trabajo son requeridos; el costo no puede ser negativo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los reportes con su contexto.
// GET /api/reportes
func (h *MaintenanceReportHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Search busca por código de solicitud, matrícula o cédula.
// GET /api/reportes/buscar/:termino
func (h *MaintenanceReportHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.Context(), c.Params("termino"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "término de búsqueda requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID obtiene un reporte.
// GET /api/reportes/:id
func (h *MaintenanceReportHandler) GetByID(c *fiber.Ctx) error {
	rep, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rep)
}
