package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

var _ repository.MaintenanceTypeRepository = (*MaintenanceTypeRepo)(nil)

// MaintenanceTypeRepo implementación de MaintenanceTypeRepository sobre PostgreSQL.
type MaintenanceTypeRepo struct {
	q Querier
}

func NewMaintenanceTypeRepository(q Querier) *MaintenanceTypeRepo {
	return &MaintenanceTypeRepo{q: q}
}

func (r *MaintenanceTypeRepo) Create(ctx context.Context, t *entity.MaintenanceType) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO tipo_mantenimiento (id, nombre, descripcion, activo)
		VALUES ($1, $2, $3, $4)`,
		t.ID, t.Nombre, nullIfEmpty(t.Descripcion), t.Activo,
	)
	if err != nil {
		return fmt.Errorf("insert tipo_mantenimiento: %w", err)
	}
	return nil
}

func (r *MaintenanceTypeRepo) GetByID(ctx context.Context, id string) (*entity.MaintenanceType, error) {
	var t entity.MaintenanceType
	err := r.q.QueryRow(ctx, `
		SELECT id, nombre, COALESCE(descripcion, ''), activo, created_at
		FROM tipo_mantenimiento WHERE id = $1`, id,
	).Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Activo, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo_mantenimiento: %w", err)
	}
	return &t, nil
}

func (r *MaintenanceTypeRepo) ListActive(ctx context.Context) ([]*entity.MaintenanceType, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nombre, COALESCE(descripcion, ''), activo, created_at
		FROM tipo_mantenimiento WHERE activo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("query tipos de mantenimiento: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceType
	for rows.Next() {
		var t entity.MaintenanceType
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Activo, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo_mantenimiento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
