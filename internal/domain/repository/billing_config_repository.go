package repository

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// BillingConfigRepository define el puerto para la configuración de facturación.
type BillingConfigRepository interface {
	// GetActive devuelve la configuración activa o domain.ErrNoBillingConfig.
	// La facturación masiva aborta por completo si esta consulta falla.
	GetActive(ctx context.Context) (*entity.BillingConfig, error)
	// Create desactiva las configuraciones anteriores y persiste la nueva como activa.
	Create(ctx context.Context, cfg *entity.BillingConfig) error
	Update(ctx context.Context, cfg *entity.BillingConfig) error
}
