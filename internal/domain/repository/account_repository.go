package repository

import (
	"context"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para matrículas.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByCode(ctx context.Context, codMatricula string) (*entity.Account, error)
	// ListActive devuelve las matrículas en estado Activa; es la lista de
	// entrada de la facturación masiva y se consulta una sola vez por corrida.
	ListActive(ctx context.Context) ([]*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	ListByOwner(ctx context.Context, cc string) ([]*entity.Account, error)
	// HasActiveForProperty indica si el predio ya tiene una matrícula activa.
	HasActiveForProperty(ctx context.Context, predioID string) (bool, error)
	UpdateEstado(ctx context.Context, codMatricula, estado string) error
	Delete(ctx context.Context, codMatricula string) error
}
