package repository

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// OwnerRepository define el puerto de persistencia para propietarios.
type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	GetByCC(ctx context.Context, cc string) (*entity.Owner, error)
	List(ctx context.Context) ([]*entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	Delete(ctx context.Context, cc string) error
}
