package billing

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función con repos de facturas y pagos atados a
// una misma transacción. El barrido de mora y la inserción de la factura
// nueva de cada matrícula corren dentro de una sola transacción.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		account *entity.Account,
		owner *entity.Owner,
		cfg *entity.BillingConfig,
	) ([]byte, error)
}
