package billing

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// PaymentUseCase consultas de pagos.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// List lista todos los pagos, más reciente primero.
func (uc *PaymentUseCase) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	pagos, err := uc.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// ListByInvoice lista los pagos de una factura.
func (uc *PaymentUseCase) ListByInvoice(ctx context.Context, facturaID string) ([]dto.PaymentResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	pagos, err := uc.paymentRepo.ListByInvoice(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}
