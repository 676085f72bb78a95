package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// BillingConfigUseCase administra la configuración de facturación activa.
type BillingConfigUseCase struct {
	repo repository.BillingConfigRepository
}

// NewBillingConfigUseCase construye el caso de uso.
func NewBillingConfigUseCase(repo repository.BillingConfigRepository) *BillingConfigUseCase {
	return &BillingConfigUseCase{repo: repo}
}

// GetActive devuelve la configuración activa.
func (uc *BillingConfigUseCase) GetActive(ctx context.Context) (*dto.BillingConfigResponse, error) {
	cfg, err := uc.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return toBillingConfigResponse(cfg), nil
}

// Create crea una configuración nueva y la activa; las anteriores quedan inactivas.
func (uc *BillingConfigUseCase) Create(ctx context.Context, in dto.BillingConfigRequest) (*dto.BillingConfigResponse, error) {
	if in.NombreAcueducto == "" || !in.TarifaBase.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	modo := in.ModoMora
	switch modo {
	case "":
		modo = entity.ModoMoraSumaAcumulada
	case entity.ModoMoraSumaAcumulada, entity.ModoMoraPorcentajeDeuda:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.PorcentajeMora.IsNegative() || in.MultaPorFactura.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	dias := in.DiasVencimiento
	if dias <= 0 {
		dias = 15
	}
	now := time.Now()
	cfg := &entity.BillingConfig{
		ID:              uuid.New().String(),
		NombreAcueducto: in.NombreAcueducto,
		NIT:             in.NIT,
		Direccion:       in.Direccion,
		Telefono:        in.Telefono,
		Email:           in.Email,
		TarifaBase:      in.TarifaBase,
		ModoMora:        modo,
		PorcentajeMora:  in.PorcentajeMora,
		MultaPorFactura: in.MultaPorFactura,
		DiasVencimiento: dias,
		Activo:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return toBillingConfigResponse(cfg), nil
}

// Update modifica la configuración activa en sitio.
func (uc *BillingConfigUseCase) Update(ctx context.Context, in dto.BillingConfigRequest) (*dto.BillingConfigResponse, error) {
	cfg, err := uc.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if in.NombreAcueducto != "" {
		cfg.NombreAcueducto = in.NombreAcueducto
	}
	if in.TarifaBase.IsPositive() {
		cfg.TarifaBase = in.TarifaBase
	}
	if in.ModoMora != "" {
		cfg.ModoMora = in.ModoMora
	}
	if !in.PorcentajeMora.IsNegative() && !in.PorcentajeMora.Equal(decimal.Zero) {
		cfg.PorcentajeMora = in.PorcentajeMora
	}
	if !in.MultaPorFactura.IsNegative() {
		cfg.MultaPorFactura = in.MultaPorFactura
	}
	if in.DiasVencimiento > 0 {
		cfg.DiasVencimiento = in.DiasVencimiento
	}
	cfg.NIT = in.NIT
	cfg.Direccion = in.Direccion
	cfg.Telefono = in.Telefono
	cfg.Email = in.Email
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return toBillingConfigResponse(cfg), nil
}

func toBillingConfigResponse(cfg *entity.BillingConfig) *dto.BillingConfigResponse {
	return &dto.BillingConfigResponse{
		ID:              cfg.ID,
		NombreAcueducto: cfg.NombreAcueducto,
		NIT:             cfg.NIT,
		Direccion:       cfg.Direccion,
		Telefono:        cfg.Telefono,
		Email:           cfg.Email,
		TarifaBase:      cfg.TarifaBase,
		ModoMora:        cfg.ModoMora,
		PorcentajeMora:  cfg.PorcentajeMora,
		MultaPorFactura: cfg.MultaPorFactura,
		DiasVencimiento: cfg.DiasVencimiento,
		Activo:          cfg.Activo,
	}
}
