package repository

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// MaintenanceRepository define el puerto de persistencia para mantenimientos.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.Maintenance) error
	GetByID(ctx context.Context, id string) (*entity.Maintenance, error)
	List(ctx context.Context) ([]*entity.Maintenance, error)
	Update(ctx context.Context, m *entity.Maintenance) error
	Delete(ctx context.Context, id string) error
}
