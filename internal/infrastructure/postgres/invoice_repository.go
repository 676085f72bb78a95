package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, cod_matricula, periodo_facturacion, fecha_creacion, fecha_vencimiento,
	valor, estado, COALESCE(observaciones, ''), COALESCE(url, ''),
	created_at, updated_at`

// Create persiste una factura nueva. El constraint único sobre
// (cod_matricula, periodo_facturacion) respalda al guardián de periodo.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO factura (id, cod_matricula, periodo_facturacion, fecha_creacion, fecha_vencimiento, valor, estado, observaciones, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CodMatricula, invoice.PeriodoFacturacion,
		invoice.FechaCreacion, invoice.FechaVencimiento, invoice.Valor,
		invoice.Estado, nullIfEmpty(invoice.Observaciones), nullIfEmpty(invoice.URL),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvoiceExistsForPeriod
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID (sin el blob del PDF).
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM factura WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return inv, nil
}

// List lista facturas, más recientes primero; estado vacío lista todas.
func (r *InvoiceRepo) List(ctx context.Context, estado string) ([]*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM factura`
	args := []any{}
	if estado != "" {
		query += ` WHERE estado = $1`
		args = append(args, estado)
	}
	query += ` ORDER BY fecha_creacion DESC`
	return r.queryInvoices(ctx, query, args...)
}

// ListByAccount lista las facturas de una matrícula, más recientes primero.
func (r *InvoiceRepo) ListByAccount(ctx context.Context, codMatricula string) ([]*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM factura WHERE cod_matricula = $1 ORDER BY fecha_creacion DESC`
	return r.queryInvoices(ctx, query, codMatricula)
}

// ExistsForPeriod responde el guardián de periodo: ¿ya hay factura para
// la pareja (matrícula, periodo)?
func (r *InvoiceRepo) ExistsForPeriod(ctx context.Context, codMatricula, periodo string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM factura WHERE cod_matricula = $1 AND periodo_facturacion = $2)`,
		codMatricula, periodo,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists factura periodo: %w", err)
	}
	return exists, nil
}

// ListOverdueByAccount devuelve las facturas con deuda de la matrícula:
// estado en {Pendiente, Vencida, en_mora} y vencimiento anterior a ref.
func (r *InvoiceRepo) ListOverdueByAccount(ctx context.Context, codMatricula string, ref time.Time) ([]*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + `
		FROM factura
		WHERE cod_matricula = $1
		  AND estado = ANY($2)
		  AND fecha_vencimiento < $3
		ORDER BY periodo_facturacion`
	return r.queryInvoices(ctx, query, codMatricula, entity.UnpaidEstados(), ref)
}

// ListOverdue devuelve todas las facturas Pendiente/Vencida ya vencidas
// (barrido global actualizar-mora; las en_mora ya están marcadas).
func (r *InvoiceRepo) ListOverdue(ctx context.Context, ref time.Time) ([]*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + `
		FROM factura
		WHERE estado = ANY($1)
		  AND fecha_vencimiento < $2
		ORDER BY fecha_vencimiento`
	estados := []string{entity.FacturaPendiente, entity.FacturaVencida}
	return r.queryInvoices(ctx, query, estados, ref)
}

// UpdateEstado cambia el estado de una factura.
func (r *InvoiceRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE factura SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado factura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AttachPDF guarda el documento PDF en la fila de la factura.
func (r *InvoiceRepo) AttachPDF(ctx context.Context, id, nombre, tipo string, documento []byte) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE factura
		SET pdf_nombre = $2, pdf_tipo = $3, pdf_documento = $4, updated_at = now()
		WHERE id = $1`,
		id, nombre, tipo, documento)
	if err != nil {
		return fmt.Errorf("attach pdf factura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetPDF devuelve el documento PDF guardado de la factura.
func (r *InvoiceRepo) GetPDF(ctx context.Context, id string) (string, string, []byte, error) {
	var nombre, tipo *string
	var documento []byte
	err := r.q.QueryRow(ctx,
		`SELECT pdf_nombre, pdf_tipo, pdf_documento FROM factura WHERE id = $1`, id,
	).Scan(&nombre, &tipo, &documento)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", nil, domain.ErrNotFound
		}
		return "", "", nil, fmt.Errorf("get pdf factura: %w", err)
	}
	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}
	return deref(nombre), deref(tipo), documento, nil
}

func (r *InvoiceRepo) queryInvoices(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CodMatricula, &inv.PeriodoFacturacion,
		&inv.FechaCreacion, &inv.FechaVencimiento,
		&inv.Valor, &inv.Estado, &inv.Observaciones, &inv.URL,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
