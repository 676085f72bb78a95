package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
)

// Tamaño máximo del PDF que se puede adjuntar a una factura.
const maxPDFSize = 10 << 20 // 10 MiB

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	generate *billing.GenerateInvoicesUseCase
	sweep    *billing.OverdueSweepUseCase
	invoices *billing.InvoiceUseCase
	payment  *billing.RegisterPaymentUseCase
	pdf      *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	generate *billing.GenerateInvoicesUseCase,
	sweep *billing.OverdueSweepUseCase,
	invoices *billing.InvoiceUseCase,
	payment *billing.RegisterPaymentUseCase,
	pdf *billing.PDFUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{
		generate: generate,
		sweep:    sweep,
		invoices: invoices,
		payment:  payment,
		pdf:      pdf,
	}
}

// GenerateMassive godoc
// @Summary      Facturación masiva de un periodo
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateBatchRequest  true  "periodo_facturacion, valor_base"
// @Success      201   {object}  dto.BatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facturas/generar-masivo [post]
func (h *InvoiceHandler) GenerateMassive(c *fiber.Ctx) error {
	var in dto.GenerateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.generate.GenerateMassive(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo_facturacion y valor_base positivo son requeridos"})
		}
		if err == domain.ErrNoActiveAccounts {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_ACCOUNTS", Message: err.Error()})
		}
		if err == domain.ErrNoBillingConfig {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_BILLING_CONFIG", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GenerateOne factura una sola matrícula con el mismo cálculo de mora.
// POST /api/facturas/generar
func (h *InvoiceHandler) GenerateOne(c *fiber.Ctx) error {
	var in dto.GenerateOneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.generate.GenerateOne(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cod_matricula, periodo_facturacion y valor_base son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "matrícula no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "la matrícula no está activa"})
		}
		if err == domain.ErrInvoiceExistsForPeriod {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PERIOD_EXISTS", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// SweepOverdue pasa a en_mora las facturas vencidas sin pagar.
// POST /api/facturas/actualizar-mora
func (h *InvoiceHandler) SweepOverdue(c *fiber.Ctx) error {
	result, err := h.sweep.Sweep(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// List lista facturas; ?estado= filtra por estado.
// GET /api/facturas
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.invoices.List(c.Context(), c.Query("estado"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID obtiene una factura con sus pagos.
// GET /api/facturas/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.invoices.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// ListByAccount lista las facturas de una matrícula.
// GET /api/facturas/matricula/:cod
func (h *InvoiceHandler) ListByAccount(c *fiber.Ctx) error {
	list, err := h.invoices.ListByAccount(c.Context(), c.Params("cod"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "matrícula no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// UpdateEstado cambia el estado de una factura.
// PUT /api/facturas/:id/estado
func (h *InvoiceHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.invoices.UpdateEstado(c.Context(), c.Params("id"), in.Estado); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Estado actualizado"})
}

// RegisterPayment registra un abono a la factura.
// POST /api/facturas/:id/pagos
func (h *InvoiceHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.payment.Register(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valor positivo requerido; fecha_pago con formato AAAA-MM-DD"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "la factura ya está pagada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GeneratePDF genera el PDF de la factura, lo guarda y lo devuelve.
// POST /api/facturas/:id/pdf
func (h *InvoiceHandler) GeneratePDF(c *fiber.Ctx) error {
	pdfBytes, nombre, err := h.pdf.Generate(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if err == domain.ErrNoBillingConfig {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_BILLING_CONFIG", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdfBytes)
}

// AttachPDF guarda un PDF subido (multipart, campo "documento").
// PUT /api/facturas/:id/pdf
func (h *InvoiceHandler) AttachPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("documento")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'documento' requerido"})
	}
	if file.Size > maxPDFSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: "el PDF supera los 10 MB"})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer src.Close()
	documento, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	if err := h.pdf.Attach(c.Context(), c.Params("id"), file.Filename, documento); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "PDF guardado"})
}

// DownloadPDF descarga el PDF guardado de la factura.
// GET /api/facturas/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	nombre, tipo, documento, err := h.pdf.Download(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura no tiene PDF guardado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, tipo)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(documento)
}
