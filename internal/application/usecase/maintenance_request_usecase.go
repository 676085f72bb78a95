package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// MaintenanceRequestUseCase casos de uso para solicitudes de mantenimiento.
type MaintenanceRequestUseCase struct {
	requests repository.MaintenanceRequestRepository
	types    repository.MaintenanceTypeRepository
	accounts repository.AccountRepository
}

// NewMaintenanceRequestUseCase construye el caso de uso.
func NewMaintenanceRequestUseCase(
	requests repository.MaintenanceRequestRepository,
	types repository.MaintenanceTypeRepository,
	accounts repository.AccountRepository,
) *MaintenanceRequestUseCase {
	return &MaintenanceRequestUseCase{requests: requests, types: types, accounts: accounts}
}

// newCodigoSolicitud genera el código con el que circula la solicitud:
// SOL-<año>-<últimos 6 dígitos del timestamp en milisegundos>.
func newCodigoSolicitud(now time.Time) string {
	return fmt.Sprintf("SOL-%d-%06d", now.Year(), now.UnixMilli()%1_000_000)
}

// Create registra una solicitud contra una matrícula existente y devuelve
// el código generado.
func (uc *MaintenanceRequestUseCase) Create(ctx context.Context, in dto.CreateSolicitudRequest) (*dto.SolicitudCreatedResponse, error) {
	if strings.TrimSpace(in.CodMatricula) == "" ||
		strings.TrimSpace(in.TipoID) == "" ||
		strings.TrimSpace(in.CedulaSolicitante) == "" {
		return nil, domain.ErrInvalidInput
	}
	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	if !entity.ValidPrioridad(prioridad) {
		return nil, domain.ErrInvalidInput
	}

	account, err := uc.accounts.GetByCode(ctx, in.CodMatricula)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	tipo, err := uc.types.GetByID(ctx, in.TipoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil || !tipo.Activo {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	s := &entity.MaintenanceRequest{
		CodigoSolicitud:   newCodigoSolicitud(now),
		CodMatricula:      in.CodMatricula,
		TipoID:            in.TipoID,
		CedulaSolicitante: in.CedulaSolicitante,
		Observaciones:     in.Observaciones,
		Prioridad:         prioridad,
		Estado:            entity.SolicitudPendiente,
		FechaSolicitud:    now,
	}
	if err := uc.requests.Create(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SolicitudCreatedResponse{
		CodigoSolicitud: s.CodigoSolicitud,
		Message:         "Solicitud creada exitosamente",
	}, nil
}

// GetByCodigo devuelve una solicitud con su contexto.
func (uc *MaintenanceRequestUseCase) GetByCodigo(ctx context.Context, codigo string) (*dto.SolicitudResponse, error) {
	d, err := uc.requests.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toSolicitudResponse(d), nil
}

// List lista las solicitudes, más reciente primero.
func (uc *MaintenanceRequestUseCase) List(ctx context.Context) ([]*dto.SolicitudResponse, error) {
	list, err := uc.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSolicitudResponses(list), nil
}

// Search busca por matrícula, cédula del solicitante o código de solicitud.
func (uc *MaintenanceRequestUseCase) Search(ctx context.Context, termino string) ([]*dto.SolicitudResponse, error) {
	if strings.TrimSpace(termino) == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.requests.Search(ctx, termino)
	if err != nil {
		return nil, err
	}
	return toSolicitudResponses(list), nil
}

// UpdateEstado cambia el estado de la solicitud.
func (uc *MaintenanceRequestUseCase) UpdateEstado(ctx context.Context, codigo, estado string) error {
	if !entity.ValidSolicitudEstado(estado) {
		return domain.ErrInvalidInput
	}
	return uc.requests.UpdateEstado(ctx, codigo, estado)
}

func toSolicitudResponses(list []*entity.MaintenanceRequestDetail) []*dto.SolicitudResponse {
	out := make([]*dto.SolicitudResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toSolicitudResponse(d))
	}
	return out
}

func toSolicitudResponse(d *entity.MaintenanceRequestDetail) *dto.SolicitudResponse {
	return &dto.SolicitudResponse{
		CodigoSolicitud:     d.CodigoSolicitud,
		CodMatricula:        d.CodMatricula,
		TipoID:              d.TipoID,
		TipoNombre:          d.TipoNombre,
		TipoDescripcion:     d.TipoDescripcion,
		CedulaSolicitante:   d.CedulaSolicitante,
		SolicitanteNombre:   d.SolicitanteNombre,
		SolicitanteApellido: d.SolicitanteApellido,
		Direccion:           d.Direccion,
		Telefono:            d.Telefono,
		Observaciones:       d.Observaciones,
		Prioridad:           d.Prioridad,
		Estado:              d.Estado,
		FechaSolicitud:      d.FechaSolicitud.Format("2006-01-02 15:04"),
	}
}
