package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain"
)

// BillingConfigHandler gestión de la configuración de facturación (solo admin).
type BillingConfigHandler struct {
	uc *usecase.BillingConfigUseCase
}

// NewBillingConfigHandler construye el handler.
func NewBillingConfigHandler(uc *usecase.BillingConfigUseCase) *BillingConfigHandler {
	return &BillingConfigHandler{uc: uc}
}

// GetActive devuelve la configuración de facturación activa.
// GET /api/configuracion
func (h *BillingConfigHandler) GetActive(c *fiber.Ctx) error {
	cfg, err := h.uc.GetActive(c.Context())
	if err != nil {
		if err == domain.ErrNoBillingConfig {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BILLING_CONFIG", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}

// Create crea una configuración nueva y desactiva la anterior.
// POST /api/configuracion
func (h *BillingConfigHandler) Create(c *fiber.Ctx) error {
	var in dto.BillingConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cfg, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_acueducto y tarifa_base positiva son requeridos; modo_mora debe ser suma_acumulada o porcentaje_deuda"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cfg)
}

// Update actualiza la configuración activa.
// PUT /api/configuracion
func (h *BillingConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.BillingConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cfg, err := h.uc.Update(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNoBillingConfig {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BILLING_CONFIG", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}
