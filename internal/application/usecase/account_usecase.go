package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// AccountUseCase casos de uso para matrículas.
type AccountUseCase struct {
	accountRepo  repository.AccountRepository
	propertyRepo repository.PropertyRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(accountRepo repository.AccountRepository, propertyRepo repository.PropertyRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, propertyRepo: propertyRepo}
}

// Create registra una matrícula nueva. El predio debe existir y no tener ya
// una matrícula activa.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.CodMatricula == "" || in.PredioID == "" {
		return nil, domain.ErrInvalidInput
	}
	property, err := uc.propertyRepo.GetByID(ctx, in.PredioID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}
	hasActive, err := uc.accountRepo.HasActiveForProperty(ctx, in.PredioID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, domain.ErrActiveRegistrationExists
	}

	account := &entity.Account{
		CodMatricula:  in.CodMatricula,
		PredioID:      in.PredioID,
		Estado:        entity.AccountEstadoActiva,
		Observaciones: in.Observaciones,
		FechaCreacion: time.Now(),
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetByCode devuelve una matrícula por su código.
func (uc *AccountUseCase) GetByCode(ctx context.Context, cod string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByCode(ctx, cod)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(account), nil
}

// List lista todas las matrículas.
func (uc *AccountUseCase) List(ctx context.Context) ([]*dto.AccountResponse, error) {
	list, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// ListByOwner lista las matrículas de un propietario (vía sus predios).
func (uc *AccountUseCase) ListByOwner(ctx context.Context, cc string) ([]*dto.AccountResponse, error) {
	list, err := uc.accountRepo.ListByOwner(ctx, cc)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// UpdateEstado cambia el estado de la matrícula (Activa, Suspendida, Cancelada).
func (uc *AccountUseCase) UpdateEstado(ctx context.Context, cod, estado string) error {
	switch estado {
	case entity.AccountEstadoActiva, entity.AccountEstadoSuspendida, entity.AccountEstadoCancelada:
	default:
		return domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.GetByCode(ctx, cod)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	return uc.accountRepo.UpdateEstado(ctx, cod, estado)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		CodMatricula:  a.CodMatricula,
		PredioID:      a.PredioID,
		Estado:        a.Estado,
		Observaciones: a.Observaciones,
		FechaCreacion: a.FechaCreacion.Format("2006-01-02"),
	}
}
