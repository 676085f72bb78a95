package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

var (
	_ billing.BillingTxRunner     = (*TxRunner)(nil)
	_ usecase.MaintenanceTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling inicia una transacción, ejecuta fn con los repos de facturas y
// pagos atados a la tx y hace Commit o Rollback. El barrido de mora y la
// inserción de la factura nueva de cada matrícula pasan por aquí.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invoiceRepo := NewInvoiceRepository(tx)
	paymentRepo := NewPaymentRepository(tx)

	if err := fn(invoiceRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMaintenanceReport inicia una transacción, ejecuta fn con los repos de
// reportes y solicitudes atados a la tx y hace Commit o Rollback. Crear el
// reporte y cerrar la solicitud suceden juntos o no suceden.
func (r *TxRunner) RunMaintenanceReport(ctx context.Context, fn func(
	reportRepo repository.MaintenanceReportRepository,
	requestRepo repository.MaintenanceRequestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reportRepo := NewMaintenanceReportRepository(tx)
	requestRepo := NewMaintenanceRequestRepository(tx)

	if err := fn(reportRepo, requestRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
