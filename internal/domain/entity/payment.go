package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "Efectivo"
	PagoTransferencia = "Transferencia"
	PagoConsignacion  = "Consignacion"
)

// Payment es un abono a una factura. Una factura puede recibir varios pagos;
// la suma de sus valores decide el paso a estado "Pagada".
type Payment struct {
	ID         string
	FacturaID  string
	FechaPago  time.Time
	MetodoPago string
	Valor      decimal.Decimal
}
