package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// OwnerUseCase casos de uso para propietarios.
type OwnerUseCase struct {
	repo repository.OwnerRepository
}

// NewOwnerUseCase construye el caso de uso.
func NewOwnerUseCase(repo repository.OwnerRepository) *OwnerUseCase {
	return &OwnerUseCase{repo: repo}
}

// Create registra un propietario; la cédula es la clave.
func (uc *OwnerUseCase) Create(ctx context.Context, in dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	if in.CC == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCC(ctx, in.CC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	owner := &entity.Owner{
		CC:            in.CC,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Telefono:      in.Telefono,
		Correo:        in.Correo,
		Direccion:     in.Direccion,
		FechaRegistro: time.Now(),
	}
	if err := uc.repo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return toOwnerResponse(owner), nil
}

// GetByCC devuelve un propietario por cédula.
func (uc *OwnerUseCase) GetByCC(ctx context.Context, cc string) (*dto.OwnerResponse, error) {
	owner, err := uc.repo.GetByCC(ctx, cc)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	return toOwnerResponse(owner), nil
}

// List lista todos los propietarios.
func (uc *OwnerUseCase) List(ctx context.Context) ([]*dto.OwnerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OwnerResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOwnerResponse(o))
	}
	return out, nil
}

// Update modifica los datos de un propietario.
func (uc *OwnerUseCase) Update(ctx context.Context, cc string, in dto.CreateOwnerRequest) error {
	owner, err := uc.repo.GetByCC(ctx, cc)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrNotFound
	}
	if in.Nombre != "" {
		owner.Nombre = in.Nombre
	}
	if in.Apellido != "" {
		owner.Apellido = in.Apellido
	}
	owner.Telefono = in.Telefono
	owner.Correo = in.Correo
	owner.Direccion = in.Direccion
	return uc.repo.Update(ctx, owner)
}

// Delete elimina un propietario.
func (uc *OwnerUseCase) Delete(ctx context.Context, cc string) error {
	owner, err := uc.repo.GetByCC(ctx, cc)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, cc)
}

func toOwnerResponse(o *entity.Owner) *dto.OwnerResponse {
	return &dto.OwnerResponse{
		CC:        o.CC,
		Nombre:    o.Nombre,
		Apellido:  o.Apellido,
		Telefono:  o.Telefono,
		Correo:    o.Correo,
		Direccion: o.Direccion,
	}
}
