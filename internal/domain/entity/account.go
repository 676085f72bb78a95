package entity

import "time"

// Estados del ciclo de vida de una matrícula. Solo las matrículas
// activas entran en la facturación masiva.
const (
	AccountEstadoActiva     = "Activa"
	AccountEstadoSuspendida = "Suspendida"
	AccountEstadoCancelada  = "Cancelada"
)

// Account representa una matrícula de acueducto: el registro del medidor
// asociado a un predio, contra el cual se emiten las facturas.
type Account struct {
	CodMatricula  string
	PredioID      string
	Estado        string
	Observaciones string
	FechaCreacion time.Time
}

// IsActive indica si la matrícula es facturable.
func (a *Account) IsActive() bool {
	return a.Estado == AccountEstadoActiva
}
