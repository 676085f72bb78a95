package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Se conservan los valores históricos de la base
// de datos ("en_mora" en minúscula incluida).
const (
	FacturaPendiente = "Pendiente" // emitida, dentro del plazo
	FacturaVencida   = "Vencida"   // pasó la fecha de vencimiento
	FacturaEnMora    = "en_mora"   // barrida por una corrida de facturación o por actualizar-mora
	FacturaPagada    = "Pagada"    // estado terminal
)

// Invoice representa una factura del servicio de acueducto, emitida contra
// una matrícula para un periodo de facturación ("YYYY-MM").
// Valor es NUMERIC en la base; siempre decimal.Decimal en memoria.
type Invoice struct {
	ID                 string
	CodMatricula       string
	PeriodoFacturacion string
	FechaCreacion      time.Time
	FechaVencimiento   time.Time
	Valor              decimal.Decimal
	Estado             string
	Observaciones      string // desglose de mora; vacío cuando no hay mora
	URL                string
	PDFNombre          string
	PDFTipo            string
	PDFDocumento       []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsUnpaid indica si la factura aún debe dinero (cuenta para la mora).
func (i *Invoice) IsUnpaid() bool {
	switch i.Estado {
	case FacturaPendiente, FacturaVencida, FacturaEnMora:
		return true
	}
	return false
}

// OverdueAt indica si la factura está vencida y sin pagar a la fecha dada.
func (i *Invoice) OverdueAt(ref time.Time) bool {
	return i.IsUnpaid() && i.FechaVencimiento.Before(ref)
}

// UnpaidEstados son los estados que entran en el cálculo de mora.
// Incluye en_mora para que una corrida interrumpida entre el barrido y la
// inserción de la factura nueva no pierda el monto en la siguiente corrida.
func UnpaidEstados() []string {
	return []string{FacturaPendiente, FacturaVencida, FacturaEnMora}
}
