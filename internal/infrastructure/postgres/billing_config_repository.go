package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

var _ repository.BillingConfigRepository = (*BillingConfigRepo)(nil)

// BillingConfigRepo implementación de BillingConfigRepository sobre PostgreSQL.
type BillingConfigRepo struct {
	q Querier
}

func NewBillingConfigRepository(q Querier) *BillingConfigRepo {
	return &BillingConfigRepo{q: q}
}

const configColumns = `
	id, nombre_acueducto, COALESCE(nit, ''), COALESCE(direccion, ''), COALESCE(telefono, ''), COALESCE(email, ''),
	tarifa_base, modo_mora, porcentaje_mora, multa_por_factura, dias_vencimiento, activo, created_at, updated_at`

// GetActive devuelve la configuración activa. Si no hay ninguna devuelve
// domain.ErrNoBillingConfig; la facturación masiva aborta con ese error.
func (r *BillingConfigRepo) GetActive(ctx context.Context) (*entity.BillingConfig, error) {
	query := `SELECT` + configColumns + ` FROM configuracion_facturacion WHERE activo ORDER BY created_at DESC LIMIT 1`
	cfg, err := scanBillingConfig(r.q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoBillingConfig
		}
		return nil, fmt.Errorf("get configuracion activa: %w", err)
	}
	return cfg, nil
}

// Create desactiva las configuraciones anteriores y persiste la nueva como
// activa, en una sola sentencia compuesta por el orden de llamadas.
func (r *BillingConfigRepo) Create(ctx context.Context, cfg *entity.BillingConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	if _, err := r.q.Exec(ctx, `UPDATE configuracion_facturacion SET activo = false, updated_at = now() WHERE activo`); err != nil {
		return fmt.Errorf("desactivar configuraciones: %w", err)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO configuracion_facturacion
			(id, nombre_acueducto, nit, direccion, telefono, email,
			 tarifa_base, modo_mora, porcentaje_mora, multa_por_factura, dias_vencimiento, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $13)`,
		cfg.ID, cfg.NombreAcueducto, nullIfEmpty(cfg.NIT), nullIfEmpty(cfg.Direccion),
		nullIfEmpty(cfg.Telefono), nullIfEmpty(cfg.Email),
		cfg.TarifaBase, cfg.ModoMora, cfg.PorcentajeMora, cfg.MultaPorFactura,
		cfg.DiasVencimiento, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert configuracion: %w", err)
	}
	return nil
}

func (r *BillingConfigRepo) Update(ctx context.Context, cfg *entity.BillingConfig) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE configuracion_facturacion
		SET nombre_acueducto = $2, nit = $3, direccion = $4, telefono = $5, email = $6,
		    tarifa_base = $7, modo_mora = $8, porcentaje_mora = $9, multa_por_factura = $10,
		    dias_vencimiento = $11, updated_at = now()
		WHERE id = $1`,
		cfg.ID, cfg.NombreAcueducto, nullIfEmpty(cfg.NIT), nullIfEmpty(cfg.Direccion),
		nullIfEmpty(cfg.Telefono), nullIfEmpty(cfg.Email),
		cfg.TarifaBase, cfg.ModoMora, cfg.PorcentajeMora, cfg.MultaPorFactura, cfg.DiasVencimiento,
	)
	if err != nil {
		return fmt.Errorf("update configuracion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBillingConfig(row pgx.Row) (*entity.BillingConfig, error) {
	var cfg entity.BillingConfig
	err := row.Scan(
		&cfg.ID, &cfg.NombreAcueducto, &cfg.NIT, &cfg.Direccion, &cfg.Telefono, &cfg.Email,
		&cfg.TarifaBase, &cfg.ModoMora, &cfg.PorcentajeMora, &cfg.MultaPorFactura,
		&cfg.DiasVencimiento, &cfg.Activo, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
