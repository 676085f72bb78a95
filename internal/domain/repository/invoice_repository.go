package repository

import (
	"context"
	"time"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List devuelve las facturas más recientes primero; estado vacío lista todas.
	List(ctx context.Context, estado string) ([]*entity.Invoice, error)
	ListByAccount(ctx context.Context, codMatricula string) ([]*entity.Invoice, error)
	// ExistsForPeriod es el guardián de periodo: true si ya hay factura
	// para la pareja (matrícula, periodo).
	ExistsForPeriod(ctx context.Context, codMatricula, periodo string) (bool, error)
	// ListOverdueByAccount devuelve las facturas de la matrícula con estado en
	// {Pendiente, Vencida, en_mora} y fecha de vencimiento anterior a ref.
	ListOverdueByAccount(ctx context.Context, codMatricula string, ref time.Time) ([]*entity.Invoice, error)
	// ListOverdue es la variante global, usada por el barrido actualizar-mora
	// (solo Pendiente y Vencida: las en_mora ya están marcadas).
	ListOverdue(ctx context.Context, ref time.Time) ([]*entity.Invoice, error)
	UpdateEstado(ctx context.Context, id, estado string) error
	AttachPDF(ctx context.Context, id, nombre, tipo string, documento []byte) error
	GetPDF(ctx context.Context, id string) (nombre, tipo string, documento []byte, err error)
}
