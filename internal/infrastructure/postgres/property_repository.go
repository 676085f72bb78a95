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

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación de PropertyRepository sobre PostgreSQL.
type PropertyRepo struct {
	q Querier
}

func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

const propertyColumns = `
	id, cc_propietario, direccion, COALESCE(telefono, ''), COALESCE(correo, ''), estrato, fecha_registro`

func (r *PropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO predio (id, cc_propietario, direccion, telefono, correo, estrato, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		property.ID, property.PropietarioID, property.Direccion,
		nullIfEmpty(property.Telefono), nullIfEmpty(property.Correo),
		property.Estrato, property.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert predio: %w", err)
	}
	return nil
}

func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	query := `SELECT` + propertyColumns + ` FROM predio WHERE id = $1`
	p, err := scanProperty(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get predio: %w", err)
	}
	return p, nil
}

func (r *PropertyRepo) List(ctx context.Context) ([]*entity.Property, error) {
	query := `SELECT` + propertyColumns + ` FROM predio ORDER BY fecha_registro DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query predios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan predio: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE predio
		SET cc_propietario = $2, direccion = $3, telefono = $4, correo = $5, estrato = $6
		WHERE id = $1`,
		property.ID, property.PropietarioID, property.Direccion,
		nullIfEmpty(property.Telefono), nullIfEmpty(property.Correo), property.Estrato,
	)
	if err != nil {
		return fmt.Errorf("update predio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM predio WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete predio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	err := row.Scan(&p.ID, &p.PropietarioID, &p.Direccion, &p.Telefono, &p.Correo, &p.Estrato, &p.FechaRegistro)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
