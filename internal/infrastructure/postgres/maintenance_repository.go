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

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación de MaintenanceRepository sobre PostgreSQL.
type MaintenanceRepo struct {
	q Querier
}

func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

func (r *MaintenanceRepo) Create(ctx context.Context, m *entity.Maintenance) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO mantenimiento (id, nombre, descripcion, estado, fecha)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Nombre, nullIfEmpty(m.Descripcion), m.Estado, m.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert mantenimiento: %w", err)
	}
	return nil
}

func (r *MaintenanceRepo) GetByID(ctx context.Context, id string) (*entity.Maintenance, error) {
	var m entity.Maintenance
	err := r.q.QueryRow(ctx, `
		SELECT id, nombre, COALESCE(descripcion, ''), estado, fecha
		FROM mantenimiento WHERE id = $1`, id,
	).Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.Estado, &m.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mantenimiento: %w", err)
	}
	return &m, nil
}

func (r *MaintenanceRepo) List(ctx context.Context) ([]*entity.Maintenance, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nombre, COALESCE(descripcion, ''), estado, fecha
		FROM mantenimiento ORDER BY fecha DESC`)
	if err != nil {
		return nil, fmt.Errorf("query mantenimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Maintenance
	for rows.Next() {
		var m entity.Maintenance
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.Estado, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan mantenimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *MaintenanceRepo) Update(ctx context.Context, m *entity.Maintenance) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE mantenimiento
		SET nombre = $2, descripcion = $3, estado = $4, fecha = $5
		WHERE id = $1`,
		m.ID, m.Nombre, nullIfEmpty(m.Descripcion), m.Estado, m.Fecha,
	)
	if err != nil {
		return fmt.Errorf("update mantenimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM mantenimiento WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mantenimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
