package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// MaintenanceTypeUseCase administra el catálogo de tipos de mantenimiento.
type MaintenanceTypeUseCase struct {
	repo repository.MaintenanceTypeRepository
}

// NewMaintenanceTypeUseCase construye el caso de uso.
func NewMaintenanceTypeUseCase(repo repository.MaintenanceTypeRepository) *MaintenanceTypeUseCase {
	return &MaintenanceTypeUseCase{repo: repo}
}

// Create registra un tipo de mantenimiento activo.
func (uc *MaintenanceTypeUseCase) Create(ctx context.Context, in dto.CreateMaintenanceTypeRequest) (*dto.MaintenanceTypeResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.MaintenanceType{
		ID:          uuid.New().String(),
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: in.Descripcion,
		Activo:      true,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toMaintenanceTypeResponse(t), nil
}

// ListActive lista los tipos activos del catálogo.
func (uc *MaintenanceTypeUseCase) ListActive(ctx context.Context) ([]*dto.MaintenanceTypeResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaintenanceTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toMaintenanceTypeResponse(t))
	}
	return out, nil
}

func toMaintenanceTypeResponse(t *entity.MaintenanceType) *dto.MaintenanceTypeResponse {
	return &dto.MaintenanceTypeResponse{
		ID:          t.ID,
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Activo:      t.Activo,
	}
}
