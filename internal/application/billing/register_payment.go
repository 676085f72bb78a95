package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
	"github.com/jhoicas/acueducto-api/internal/observability/metrics"
)

// RegisterPaymentUseCase registra un abono a una factura y la pasa a Pagada
// cuando la suma de pagos alcanza su valor. Pagada es estado terminal.
type RegisterPaymentUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewRegisterPaymentUseCase construye el caso de uso.
func NewRegisterPaymentUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// Register persiste el pago y recalcula el estado de la factura. La inserción
// del pago y la transición de estado van en la misma transacción.
func (uc *RegisterPaymentUseCase) Register(ctx context.Context, facturaID string, in dto.RegisterPaymentRequest) (*dto.RegisterPaymentResponse, error) {
	if facturaID == "" || !in.Valor.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Estado == entity.FacturaPagada {
		return nil, domain.ErrConflict
	}

	fechaPago := time.Now()
	if in.FechaPago != "" {
		fechaPago, err = time.Parse("2006-01-02", in.FechaPago)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	var out dto.RegisterPaymentResponse
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		payment := &entity.Payment{
			ID:         uuid.New().String(),
			FacturaID:  facturaID,
			FechaPago:  fechaPago,
			MetodoPago: in.MetodoPago,
			Valor:      in.Valor,
		}
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		pagos, err := paymentRepo.ListByInvoice(ctx, facturaID)
		if err != nil {
			return err
		}
		totalPagado := decimal.Zero
		for _, p := range pagos {
			totalPagado = totalPagado.Add(p.Valor)
		}

		estado := invoice.Estado
		if totalPagado.GreaterThanOrEqual(invoice.Valor) {
			estado = entity.FacturaPagada
			if err := invoiceRepo.UpdateEstado(ctx, facturaID, estado); err != nil {
				return err
			}
		}
		out = dto.RegisterPaymentResponse{
			Message:     "Pago registrado exitosamente",
			TotalPagado: totalPagado,
			Estado:      estado,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.IncPayment(in.MetodoPago)
	return &out, nil
}
