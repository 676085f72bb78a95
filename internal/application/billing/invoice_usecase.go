package billing

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

const fechaISO = "2006-01-02"

// InvoiceUseCase consultas y operaciones simples sobre facturas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	accountRepo repository.AccountRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	accountRepo repository.AccountRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, accountRepo: accountRepo}
}

// List lista facturas; estado vacío lista todas.
func (uc *InvoiceUseCase) List(ctx context.Context, estado string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List(ctx, estado)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toInvoiceResponse(f))
	}
	return out, nil
}

// GetByID devuelve la factura con sus pagos.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	pagos, err := uc.paymentRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice)
	for _, p := range pagos {
		resp.Pagos = append(resp.Pagos, toPaymentResponse(p))
	}
	return resp, nil
}

// ListByAccount lista las facturas de una matrícula.
func (uc *InvoiceUseCase) ListByAccount(ctx context.Context, codMatricula string) ([]*dto.InvoiceResponse, error) {
	account, err := uc.accountRepo.GetByCode(ctx, codMatricula)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.invoiceRepo.ListByAccount(ctx, codMatricula)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toInvoiceResponse(f))
	}
	return out, nil
}

// UpdateEstado cambia el estado de una factura (operación administrativa).
func (uc *InvoiceUseCase) UpdateEstado(ctx context.Context, id, estado string) error {
	switch estado {
	case entity.FacturaPendiente, entity.FacturaVencida, entity.FacturaEnMora, entity.FacturaPagada:
	default:
		return domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.UpdateEstado(ctx, id, estado)
}

func toInvoiceResponse(f *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:                 f.ID,
		CodMatricula:       f.CodMatricula,
		PeriodoFacturacion: f.PeriodoFacturacion,
		FechaCreacion:      f.FechaCreacion.Format(fechaISO),
		FechaVencimiento:   f.FechaVencimiento.Format(fechaISO),
		Valor:              f.Valor,
		Estado:             f.Estado,
		Observaciones:      f.Observaciones,
		URL:                f.URL,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:         p.ID,
		FacturaID:  p.FacturaID,
		FechaPago:  p.FechaPago.Format(fechaISO),
		MetodoPago: p.MetodoPago,
		Valor:      p.Valor,
	}
}
