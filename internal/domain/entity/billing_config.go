package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de cálculo de la mora. Históricamente convivieron dos semánticas;
// la configuración activa decide cuál aplica en cada despliegue.
const (
	ModoMoraSumaAcumulada   = "suma_acumulada"   // mora = suma de facturas vencidas sin pagar
	ModoMoraPorcentajeDeuda = "porcentaje_deuda" // mora = % sobre la deuda vencida total
)

// BillingConfig es la configuración de facturación del acueducto. Solo una
// fila está activa a la vez; crear una nueva desactiva las anteriores.
type BillingConfig struct {
	ID              string
	NombreAcueducto string
	NIT             string
	Direccion       string
	Telefono        string
	Email           string
	TarifaBase      decimal.Decimal
	ModoMora        string
	PorcentajeMora  decimal.Decimal // solo aplica con ModoMoraPorcentajeDeuda (ej. 5 = 5%)
	MultaPorFactura decimal.Decimal // multa fija por factura en mora; cero la desactiva
	DiasVencimiento int
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
