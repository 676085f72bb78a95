// Package billing contiene el cálculo puro de mora y multas para la
// facturación del acueducto. No toca la base de datos: recibe las facturas
// vencidas ya consultadas y devuelve los montos y el desglose.
//
// Conviven dos semánticas de mora heredadas del sistema original:
//
//	suma_acumulada:   mora = Σ valor de cada factura vencida sin pagar
//	porcentaje_deuda: mora = (Σ valor) × porcentaje / 100
//
// La política activa se elige por configuración, nunca implícitamente.
package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// Policy parametriza el cálculo de mora de una corrida de facturación.
// Se pasa explícitamente a cada corrida; no hay estado global.
type Policy struct {
	Modo            string          // entity.ModoMoraSumaAcumulada | entity.ModoMoraPorcentajeDeuda
	PorcentajeMora  decimal.Decimal // solo con porcentaje_deuda; 5 significa 5%
	MultaPorFactura decimal.Decimal // multa fija por factura vencida; cero desactiva las multas
}

// DefaultPolicy es la semántica histórica por defecto: suma acumulada, sin multas.
func DefaultPolicy() Policy {
	return Policy{Modo: entity.ModoMoraSumaAcumulada}
}

// OverdueItem es una factura vencida dentro del desglose de mora.
type OverdueItem struct {
	FacturaID string
	Periodo   string
	Valor     decimal.Decimal
}

// Result es el resultado del cálculo de mora para una matrícula.
type Result struct {
	Mora   decimal.Decimal // mora acumulada según la política
	Multas decimal.Decimal // multa fija × número de facturas vencidas
	Items  []OverdueItem   // desglose, en el orden de las facturas de entrada
}

// HasArrears indica si la matrícula arrastra deuda.
func (r Result) HasArrears() bool {
	return len(r.Items) > 0
}

// Total compone el valor de la factura nueva: tarifa base + mora + multas.
func (r Result) Total(base decimal.Decimal) decimal.Decimal {
	return base.Add(r.Mora).Add(r.Multas)
}

// Compute calcula la mora sobre las facturas vencidas de una matrícula.
// Las facturas deben venir ya filtradas por estado {Pendiente, Vencida,
// en_mora} y fecha de vencimiento anterior a la fecha de emisión; Compute no
// vuelve a validar el predicado. Con cero facturas devuelve un Result vacío.
func Compute(p Policy, overdue []*entity.Invoice) Result {
	res := Result{Mora: decimal.Zero, Multas: decimal.Zero}
	if len(overdue) == 0 {
		return res
	}

	deuda := decimal.Zero
	for _, f := range overdue {
		deuda = deuda.Add(f.Valor)
		res.Items = append(res.Items, OverdueItem{
			FacturaID: f.ID,
			Periodo:   f.PeriodoFacturacion,
			Valor:     f.Valor,
		})
	}

	switch p.Modo {
	case entity.ModoMoraPorcentajeDeuda:
		res.Mora = deuda.Mul(p.PorcentajeMora).Div(decimal.NewFromInt(100))
	default:
		// suma_acumulada (y cualquier modo no reconocido cae aquí)
		res.Mora = deuda
	}

	if p.MultaPorFactura.IsPositive() {
		res.Multas = p.MultaPorFactura.Mul(decimal.NewFromInt(int64(len(overdue))))
	}
	return res
}

// Observaciones construye el desglose legible que se guarda en la factura
// nueva. Es determinista: mismo Result, misma cadena. Devuelve vacío cuando
// no hay mora, para que la columna quede NULL.
func (r Result) Observaciones() string {
	if !r.HasArrears() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Incluye mora acumulada: $%s.", r.Mora.String())
	for _, it := range r.Items {
		fmt.Fprintf(&b, " Periodo %s: $%s.", it.Periodo, it.Valor.String())
	}
	if r.Multas.IsPositive() {
		fmt.Fprintf(&b, " Multas: $%s (%d factura(s) en mora).", r.Multas.String(), len(r.Items))
	}
	return b.String()
}
