package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de mantenimiento. Se conservan los valores
// históricos en minúscula.
const (
	SolicitudPendiente  = "pendiente"
	SolicitudEnProceso  = "en_proceso"
	SolicitudCompletada = "completado"
	SolicitudCancelada  = "cancelada"
)

// Prioridades de una solicitud; media es el valor por defecto.
const (
	PrioridadBaja  = "baja"
	PrioridadMedia = "media"
	PrioridadAlta  = "alta"
)

// MaintenanceType es una entrada del catálogo tipo_mantenimiento
// (fuga, daño de medidor, reconexión...). Las entradas inactivas se
// conservan por las solicitudes históricas que las referencian.
type MaintenanceType struct {
	ID          string
	Nombre      string
	Descripcion string
	Activo      bool
	CreatedAt   time.Time
}

// MaintenanceRequest es una solicitud de mantenimiento levantada por un
// funcionario contra una matrícula. El código SOL-YYYY-NNNNNN es la clave
// natural con la que circula en ventanilla.
type MaintenanceRequest struct {
	CodigoSolicitud   string
	CodMatricula      string
	TipoID            string
	CedulaSolicitante string
	Observaciones     string
	Prioridad         string
	Estado            string
	FechaSolicitud    time.Time
}

// MaintenanceRequestDetail es la solicitud con sus datos de contexto
// (tipo, solicitante y predio) resueltos por join.
type MaintenanceRequestDetail struct {
	MaintenanceRequest

	TipoNombre          string
	TipoDescripcion     string
	SolicitanteNombre   string
	SolicitanteApellido string
	Direccion           string
	Telefono            string
}

// MaintenanceReport es el reporte del trabajo realizado que cierra una
// solicitud. Crear el reporte deja la solicitud en estado completado.
type MaintenanceReport struct {
	ID                   string
	CodigoSolicitud      string
	CedulaFontanero      string // vacío si el trabajo no quedó asignado a un fontanero registrado
	DescripcionTrabajo   string
	MaterialesUsados     string
	Costo                decimal.Decimal
	EstadoFinal          string
	ObservacionesFinales string
	FechaRealizacion     time.Time
}

// MaintenanceReportDetail es el reporte con la solicitud, el predio y las
// personas involucradas resueltos por join.
type MaintenanceReportDetail struct {
	MaintenanceReport

	CodMatricula           string
	SolicitudObservaciones string
	Direccion              string
	FontaneroNombre        string
	FontaneroApellido      string
	SolicitanteNombre      string
	SolicitanteApellido    string
}

// ValidSolicitudEstado valida los estados admitidos para una solicitud.
func ValidSolicitudEstado(estado string) bool {
	switch estado {
	case SolicitudPendiente, SolicitudEnProceso, SolicitudCompletada, SolicitudCancelada:
		return true
	}
	return false
}

// ValidPrioridad valida las prioridades admitidas.
func ValidPrioridad(p string) bool {
	switch p {
	case PrioridadBaja, PrioridadMedia, PrioridadAlta:
		return true
	}
	return false
}
