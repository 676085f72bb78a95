package repository

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// MaintenanceTypeRepository define el puerto de persistencia para el
// catálogo tipo_mantenimiento.
type MaintenanceTypeRepository interface {
	Create(ctx context.Context, t *entity.MaintenanceType) error
	GetByID(ctx context.Context, id string) (*entity.MaintenanceType, error)
	// ListActive devuelve solo las entradas activas; es lo que ve el
	// formulario de nueva solicitud.
	ListActive(ctx context.Context) ([]*entity.MaintenanceType, error)
}

// MaintenanceRequestRepository define el puerto de persistencia para
// solicitudes de mantenimiento.
type MaintenanceRequestRepository interface {
	Create(ctx context.Context, s *entity.MaintenanceRequest) error
	GetByCodigo(ctx context.Context, codigo string) (*entity.MaintenanceRequestDetail, error)
	// List devuelve las solicitudes más recientes primero, con tipo,
	// solicitante y predio resueltos.
	List(ctx context.Context) ([]*entity.MaintenanceRequestDetail, error)
	// Search busca por matrícula, cédula del solicitante o código de
	// solicitud exactos.
	Search(ctx context.Context, termino string) ([]*entity.MaintenanceRequestDetail, error)
	UpdateEstado(ctx context.Context, codigo, estado string) error
}

// MaintenanceReportRepository define el puerto de persistencia para
// reportes de mantenimiento.
type MaintenanceReportRepository interface {
	Create(ctx context.Context, r *entity.MaintenanceReport) error
	GetByID(ctx context.Context, id string) (*entity.MaintenanceReportDetail, error)
	List(ctx context.Context) ([]*entity.MaintenanceReportDetail, error)
	// Search busca por código de solicitud, matrícula o cédula del
	// solicitante exactos.
	Search(ctx context.Context, termino string) ([]*entity.MaintenanceReportDetail, error)
}
