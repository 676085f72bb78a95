package http_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	apphttp "github.com/jhoicas/acueducto-api/internal/interfaces/http"
)

// pdfInvoiceRepo es un repositorio en memoria para los tests del handler de
// PDFs: guarda la factura y captura el blob adjuntado.
type pdfInvoiceRepo struct {
	invoice *entity.Invoice

	attachedNombre string
	attachedTipo   string
	attachedDoc    []byte
}

func (r *pdfInvoiceRepo) Create(context.Context, *entity.Invoice) error { return nil }

func (r *pdfInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if r.invoice != nil && r.invoice.ID == id {
		return r.invoice, nil
	}
	return nil, nil
}

func (r *pdfInvoiceRepo) List(context.Context, string) ([]*entity.Invoice, error) { return nil, nil }

func (r *pdfInvoiceRepo) ListByAccount(context.Context, string) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *pdfInvoiceRepo) ExistsForPeriod(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *pdfInvoiceRepo) ListOverdueByAccount(context.Context, string, time.Time) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *pdfInvoiceRepo) ListOverdue(context.Context, time.Time) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *pdfInvoiceRepo) UpdateEstado(context.Context, string, string) error { return nil }

func (r *pdfInvoiceRepo) AttachPDF(_ context.Context, _, nombre, tipo string, documento []byte) error {
	r.attachedNombre = nombre
	r.attachedTipo = tipo
	r.attachedDoc = documento
	return nil
}

func (r *pdfInvoiceRepo) GetPDF(context.Context, string) (string, string, []byte, error) {
	return r.attachedNombre, r.attachedTipo, r.attachedDoc, nil
}

func buildAttachPDFApp(repo *pdfInvoiceRepo) *fiber.App {
	pdfUC := billing.NewPDFUseCase(repo, nil, nil, nil, nil, nil)
	handler := apphttp.NewInvoiceHandler(nil, nil, nil, nil, pdfUC)
	app := fiber.New(fiber.Config{BodyLimit: 12 << 20})
	app.Put("/api/facturas/:id/pdf", handler.AttachPDF)
	return app
}

// multipartPDF arma un cuerpo multipart con el campo "documento".
func multipartPDF(t *testing.T, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("documento", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// El blob persistido debe ser byte a byte igual al archivo subido, también
// con archivos grandes que multipart desborda a disco en vez de memoria.
func TestAttachPDF_GuardaBytesCompletos(t *testing.T) {
	repo := &pdfInvoiceRepo{invoice: &entity.Invoice{
		ID:                 "fac-1",
		CodMatricula:       "MAT-001",
		PeriodoFacturacion: "2026-08",
		Estado:             entity.FacturaPendiente,
	}}
	app := buildAttachPDFApp(repo)

	// 1 MiB con patrón no repetitivo: un padding con ceros o un recorte
	// cambiaría el contenido y fallaría la comparación exacta.
	payload := make([]byte, 1<<20)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	body, contentType := multipartPDF(t, "factura_manual.pdf", payload)

	req := httptest.NewRequest(http.MethodPut, "/api/facturas/fac-1/pdf", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "factura_manual.pdf", repo.attachedNombre)
	assert.Equal(t, "application/pdf", repo.attachedTipo)
	require.Len(t, repo.attachedDoc, len(payload))
	assert.True(t, bytes.Equal(payload, repo.attachedDoc), "el PDF guardado debe ser idéntico al subido")
}

// Una factura inexistente responde 404 sin guardar nada.
func TestAttachPDF_FacturaNoExiste(t *testing.T) {
	repo := &pdfInvoiceRepo{}
	app := buildAttachPDFApp(repo)

	body, contentType := multipartPDF(t, "x.pdf", []byte("%PDF-1.4 contenido"))
	req := httptest.NewRequest(http.MethodPut, "/api/facturas/no-existe/pdf", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Nil(t, repo.attachedDoc)
}
