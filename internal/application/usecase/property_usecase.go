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

// PropertyUseCase casos de uso para predios.
type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(propertyRepo repository.PropertyRepository, ownerRepo repository.OwnerRepository) *PropertyUseCase {
	return &PropertyUseCase{propertyRepo: propertyRepo, ownerRepo: ownerRepo}
}

// Create registra un predio. El propietario debe existir.
func (uc *PropertyUseCase) Create(ctx context.Context, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if in.PropietarioID == "" || in.Direccion == "" {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.ownerRepo.GetByCC(ctx, in.PropietarioID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	property := &entity.Property{
		ID:            uuid.New().String(),
		PropietarioID: in.PropietarioID,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		Correo:        in.Correo,
		Estrato:       in.Estrato,
		FechaRegistro: time.Now(),
	}
	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

// GetByID devuelve un predio.
func (uc *PropertyUseCase) GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	return toPropertyResponse(property), nil
}

// List lista todos los predios.
func (uc *PropertyUseCase) List(ctx context.Context) ([]*dto.PropertyResponse, error) {
	list, err := uc.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPropertyResponse(p))
	}
	return out, nil
}

// Update modifica los datos de contacto del predio.
func (uc *PropertyUseCase) Update(ctx context.Context, id string, in dto.CreatePropertyRequest) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return domain.ErrNotFound
	}
	if in.Direccion != "" {
		property.Direccion = in.Direccion
	}
	property.Telefono = in.Telefono
	property.Correo = in.Correo
	if in.Estrato > 0 {
		property.Estrato = in.Estrato
	}
	return uc.propertyRepo.Update(ctx, property)
}

// Delete elimina un predio.
func (uc *PropertyUseCase) Delete(ctx context.Context, id string) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return domain.ErrNotFound
	}
	return uc.propertyRepo.Delete(ctx, id)
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		ID:            p.ID,
		PropietarioID: p.PropietarioID,
		Direccion:     p.Direccion,
		Telefono:      p.Telefono,
		Correo:        p.Correo,
		Estrato:       p.Estrato,
	}
}
