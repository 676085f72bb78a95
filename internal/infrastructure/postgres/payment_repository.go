package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO pago (id, id_factura, fecha_pago, metodo_pago, valor)
		VALUES ($1, $2, $3, $4, $5)`,
		payment.ID, payment.FacturaID, payment.FechaPago, payment.MetodoPago, payment.Valor,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// ListByInvoice lista los pagos de una factura, más recientes primero.
func (r *PaymentRepo) ListByInvoice(ctx context.Context, facturaID string) ([]*entity.Payment, error) {
	return r.query(ctx, `
		SELECT id, id_factura, fecha_pago, metodo_pago, valor
		FROM pago WHERE id_factura = $1 ORDER BY fecha_pago DESC`, facturaID)
}

// List lista todos los pagos, más recientes primero.
func (r *PaymentRepo) List(ctx context.Context) ([]*entity.Payment, error) {
	return r.query(ctx, `
		SELECT id, id_factura, fecha_pago, metodo_pago, valor
		FROM pago ORDER BY fecha_pago DESC`)
}

func (r *PaymentRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query pagos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.FacturaID, &p.FechaPago, &p.MetodoPago, &p.Valor); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
