package entity

import "time"

// Estados de un mantenimiento o solicitud de reparación.
const (
	MantenimientoPendiente  = "Pendiente"
	MantenimientoEnProceso  = "En proceso"
	MantenimientoCompletado = "Completado"
)

// Maintenance es un registro de mantenimiento de la red o de un medidor.
type Maintenance struct {
	ID          string
	Nombre      string
	Descripcion string
	Estado      string
	Fecha       time.Time
}
