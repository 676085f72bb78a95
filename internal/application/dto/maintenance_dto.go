package dto

import "github.com/shopspring/decimal"

// CreateMaintenanceRequest body para POST /api/mantenimientos.
type CreateMaintenanceRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Estado      string `json:"estado,omitempty"` // default Pendiente
}

// MaintenanceResponse mantenimiento en respuestas.
type MaintenanceResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Estado      string `json:"estado"`
	Fecha       string `json:"fecha"`
}

// CreateMaintenanceTypeRequest body para POST /api/tipos-mantenimiento.
type CreateMaintenanceTypeRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// MaintenanceTypeResponse entrada del catálogo en respuestas.
type MaintenanceTypeResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
}

// CreateSolicitudRequest body para POST /api/solicitudes.
type CreateSolicitudRequest struct {
	CodMatricula      string `json:"cod_matricula"`
	TipoID            string `json:"id_tipo"`
	CedulaSolicitante string `json:"cedula_solicitante"`
	Observaciones     string `json:"observaciones,omitempty"`
	Prioridad         string `json:"prioridad,omitempty"` // default media
}

// UpdateSolicitudEstadoRequest body para PUT /api/solicitudes/:codigo/estado.
type UpdateSolicitudEstadoRequest struct {
	Estado string `json:"estado"`
}

// SolicitudCreatedResponse respuesta de creación de solicitud.
type SolicitudCreatedResponse struct {
	CodigoSolicitud string `json:"codigo_solicitud"`
	Message         string `json:"message"`
}

// SolicitudResponse solicitud con tipo, solicitante y predio resueltos.
type SolicitudResponse struct {
	CodigoSolicitud     string `json:"codigo_solicitud"`
	CodMatricula        string `json:"cod_matricula"`
	TipoID              string `json:"id_tipo"`
	TipoNombre          string `json:"tipo_nombre"`
	TipoDescripcion     string `json:"tipo_descripcion,omitempty"`
	CedulaSolicitante   string `json:"cedula_solicitante"`
	SolicitanteNombre   string `json:"solicitante_nombre"`
	SolicitanteApellido string `json:"solicitante_apellido,omitempty"`
	Direccion           string `json:"direccion"`
	Telefono            string `json:"telefono,omitempty"`
	Observaciones       string `json:"observaciones,omitempty"`
	Prioridad           string `json:"prioridad"`
	Estado              string `json:"estado"`
	FechaSolicitud      string `json:"fecha_solicitud"`
}

// CreateReporteRequest body para POST /api/reportes.
type CreateReporteRequest struct {
	CodigoSolicitud      string          `json:"codigo_solicitud"`
	CedulaFontanero      string          `json:"cedula_fontanero,omitempty"`
	DescripcionTrabajo   string          `json:"descripcion_trabajo"`
	MaterialesUsados     string          `json:"materiales_usados,omitempty"`
	Costo                decimal.Decimal `json:"costo"`
	EstadoFinal          string          `json:"estado_final,omitempty"` // default completado
	ObservacionesFinales string          `json:"observaciones_finales,omitempty"`
}

// ReporteCreatedResponse respuesta de creación de reporte.
type ReporteCreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ReporteResponse reporte con solicitud, predio y personas resueltos.
type ReporteResponse struct {
	ID                     string          `json:"id"`
	CodigoSolicitud        string          `json:"codigo_solicitud"`
	CodMatricula           string          `json:"cod_matricula"`
	Direccion              string          `json:"direccion"`
	CedulaFontanero        string          `json:"cedula_fontanero,omitempty"`
	FontaneroNombre        string          `json:"fontanero_nombre,omitempty"`
	FontaneroApellido      string          `json:"fontanero_apellido,omitempty"`
	SolicitanteNombre      string          `json:"solicitante_nombre"`
	SolicitanteApellido    string          `json:"solicitante_apellido,omitempty"`
	DescripcionTrabajo     string          `json:"descripcion_trabajo"`
	MaterialesUsados       string          `json:"materiales_usados,omitempty"`
	Costo                  decimal.Decimal `json:"costo"`
	EstadoFinal            string          `json:"estado_final"`
	ObservacionesFinales   string          `json:"observaciones_finales,omitempty"`
	SolicitudObservaciones string          `json:"solicitud_observaciones,omitempty"`
	FechaRealizacion       string          `json:"fecha_realizacion"`
}
