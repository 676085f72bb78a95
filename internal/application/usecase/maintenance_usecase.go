package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// MaintenanceUseCase casos de uso para mantenimientos.
type MaintenanceUseCase struct {
	repo repository.MaintenanceRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo}
}

// Create registra un mantenimiento; estado por defecto Pendiente.
func (uc *MaintenanceUseCase) Create(ctx context.Context, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.MantenimientoPendiente
	}
	m := &entity.Maintenance{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Estado:      estado,
		Fecha:       time.Now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// GetByID devuelve un mantenimiento.
func (uc *MaintenanceUseCase) GetByID(ctx context.Context, id string) (*dto.MaintenanceResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(m), nil
}

// List lista los mantenimientos, más reciente primero.
func (uc *MaintenanceUseCase) List(ctx context.Context) ([]*dto.MaintenanceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaintenanceResponse(m))
	}
	return out, nil
}

// Update modifica un mantenimiento.
func (uc *MaintenanceUseCase) Update(ctx context.Context, id string, in dto.CreateMaintenanceRequest) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if in.Nombre != "" {
		m.Nombre = in.Nombre
	}
	if in.Descripcion != "" {
		m.Descripcion = in.Descripcion
	}
	if in.Estado != "" {
		m.Estado = in.Estado
	}
	return uc.repo.Update(ctx, m)
}

// Delete elimina un mantenimiento.
func (uc *MaintenanceUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toMaintenanceResponse(m *entity.Maintenance) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Estado:      m.Estado,
		Fecha:       m.Fecha.Format("2006-01-02"),
	}
}
