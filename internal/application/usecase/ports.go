package usecase

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// MaintenanceTxRunner ejecuta una función con los repos de reportes y
// solicitudes atados a una misma transacción. Crear un reporte y marcar la
// solicitud como completada es una sola operación atómica.
type MaintenanceTxRunner interface {
	RunMaintenanceReport(ctx context.Context, fn func(
		reportRepo repository.MaintenanceReportRepository,
		requestRepo repository.MaintenanceRequestRepository,
	) error) error
}
