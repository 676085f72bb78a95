package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// MaintenanceReportUseCase casos de uso para reportes de mantenimiento.
// Crear un reporte cierra la solicitud: ambas escrituras van en la misma
// transacción vía el tx runner.
type MaintenanceReportUseCase struct {
	reports  repository.MaintenanceReportRepository
	requests repository.MaintenanceRequestRepository
	tx       MaintenanceTxRunner
}

// NewMaintenanceReportUseCase construye el caso de uso.
func NewMaintenanceReportUseCase(
	reports repository.MaintenanceReportRepository,
	requests repository.MaintenanceRequestRepository,
	tx MaintenanceTxRunner,
) *MaintenanceReportUseCase {
	return &MaintenanceReportUseCase{reports: reports, requests: requests, tx: tx}
}

// Create registra el reporte del trabajo y marca la solicitud como
// completada.
func (uc *MaintenanceReportUseCase) Create(ctx context.Context, in dto.CreateReporteRequest) (*dto.ReporteCreatedResponse, error) {
	if strings.TrimSpace(in.CodigoSolicitud) == "" ||
		strings.TrimSpace(in.DescripcionTrabajo) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Costo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	estadoFinal := in.EstadoFinal
	if estadoFinal == "" {
		estadoFinal = entity.SolicitudCompletada
	}

	solicitud, err := uc.requests.GetByCodigo(ctx, in.CodigoSolicitud)
	if err != nil {
		return nil, err
	}
	if solicitud == nil {
		return nil, domain.ErrNotFound
	}

	rep := &entity.MaintenanceReport{
		ID:                   uuid.New().String(),
		CodigoSolicitud:      in.CodigoSolicitud,
		CedulaFontanero:      in.CedulaFontanero,
		DescripcionTrabajo:   in.DescripcionTrabajo,
		MaterialesUsados:     in.MaterialesUsados,
		Costo:                in.Costo,
		EstadoFinal:          estadoFinal,
		ObservacionesFinales: in.ObservacionesFinales,
		FechaRealizacion:     time.Now(),
	}

	err = uc.tx.RunMaintenanceReport(ctx, func(
		reportRepo repository.MaintenanceReportRepository,
		requestRepo repository.MaintenanceRequestRepository,
	) error {
		if err := reportRepo.Create(ctx, rep); err != nil {
			return err
		}
		return requestRepo.UpdateEstado(ctx, in.CodigoSolicitud, entity.SolicitudCompletada)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ReporteCreatedResponse{
		ID:      rep.ID,
		Message: "Reporte creado exitosamente",
	}, nil
}

// GetByID devuelve un reporte con su contexto.
func (uc *MaintenanceReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReporteResponse, error) {
	d, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toReporteResponse(d), nil
}

// List lista los reportes, más reciente primero.
func (uc *MaintenanceReportUseCase) List(ctx context.Context) ([]*dto.ReporteResponse, error) {
	list, err := uc.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	return toReporteResponses(list), nil
}

// Search busca por código de solicitud, matrícula o cédula del solicitante.
func (uc *MaintenanceReportUseCase) Search(ctx context.Context, termino string) ([]*dto.ReporteResponse, error) {
	if strings.TrimSpace(termino) == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.reports.Search(ctx, termino)
	if err != nil {
		return nil, err
	}
	return toReporteResponses(list), nil
}

func toReporteResponses(list []*entity.MaintenanceReportDetail) []*dto.ReporteResponse {
	out := make([]*dto.ReporteResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toReporteResponse(d))
	}
	return out
}

func toReporteResponse(d *entity.MaintenanceReportDetail) *dto.ReporteResponse {
	return &dto.ReporteResponse{
		ID:                     d.ID,
		CodigoSolicitud:        d.CodigoSolicitud,
		CodMatricula:           d.CodMatricula,
		Direccion:              d.Direccion,
		CedulaFontanero:        d.CedulaFontanero,
		FontaneroNombre:        d.FontaneroNombre,
		FontaneroApellido:      d.FontaneroApellido,
		SolicitanteNombre:      d.SolicitanteNombre,
		SolicitanteApellido:    d.SolicitanteApellido,
		DescripcionTrabajo:     d.DescripcionTrabajo,
		MaterialesUsados:       d.MaterialesUsados,
		Costo:                  d.Costo,
		EstadoFinal:            d.EstadoFinal,
		ObservacionesFinales:   d.ObservacionesFinales,
		SolicitudObservaciones: d.SolicitudObservaciones,
		FechaRealizacion:       d.FechaRealizacion.Format("2006-01-02 15:04"),
	}
}
