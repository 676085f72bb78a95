package billing

import (
	"context"
	"time"

	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
	"github.com/jhoicas/acueducto-api/internal/observability/metrics"
)

// PDFUseCase genera, guarda y descarga la representación gráfica de una factura.
// El PDF se guarda como blob en la misma fila de la factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	accountRepo  repository.AccountRepository
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
	configRepo   repository.BillingConfigRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	accountRepo repository.AccountRepository,
	propertyRepo repository.PropertyRepository,
	ownerRepo repository.OwnerRepository,
	configRepo repository.BillingConfigRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		accountRepo:  accountRepo,
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		configRepo:   configRepo,
		generator:    generator,
	}
}

// Generate arma el PDF de la factura y lo deja guardado en la fila.
func (uc *PDFUseCase) Generate(ctx context.Context, facturaID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, facturaID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}

	account, err := uc.accountRepo.GetByCode(ctx, invoice.CodMatricula)
	if err != nil || account == nil {
		return nil, "", domain.ErrNotFound
	}

	// Propietario vía predio; si falta algún eslabón el PDF sale sin receptor.
	ownerForPDF := uc.resolveOwner(ctx, account.PredioID)

	cfg, err := uc.configRepo.GetActive(ctx)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, invoice, account, ownerForPDF, cfg)
	metrics.ObservePDF(err, time.Since(start))
	if err != nil {
		return nil, "", err
	}

	nombre := "factura_" + invoice.CodMatricula + "_" + invoice.PeriodoFacturacion + ".pdf"
	if err := uc.invoiceRepo.AttachPDF(ctx, facturaID, nombre, "application/pdf", pdfBytes); err != nil {
		return nil, "", err
	}
	return pdfBytes, nombre, nil
}

// Attach guarda un PDF subido por el cliente (máx. validado en el handler).
func (uc *PDFUseCase) Attach(ctx context.Context, facturaID, nombre string, documento []byte) error {
	invoice, err := uc.invoiceRepo.GetByID(ctx, facturaID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.AttachPDF(ctx, facturaID, nombre, "application/pdf", documento)
}

// Download devuelve el PDF guardado de la factura.
func (uc *PDFUseCase) Download(ctx context.Context, facturaID string) (nombre, tipo string, documento []byte, err error) {
	nombre, tipo, documento, err = uc.invoiceRepo.GetPDF(ctx, facturaID)
	if err != nil {
		return "", "", nil, err
	}
	if len(documento) == 0 {
		return "", "", nil, domain.ErrNotFound
	}
	if nombre == "" {
		nombre = "factura.pdf"
	}
	if tipo == "" {
		tipo = "application/pdf"
	}
	return nombre, tipo, documento, nil
}

func (uc *PDFUseCase) resolveOwner(ctx context.Context, predioID string) *entity.Owner {
	property, err := uc.propertyRepo.GetByID(ctx, predioID)
	if err != nil || property == nil {
		return nil
	}
	owner, err := uc.ownerRepo.GetByCC(ctx, property.PropietarioID)
	if err != nil {
		return nil
	}
	return owner
}
