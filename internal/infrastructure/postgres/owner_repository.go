package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implementación de OwnerRepository sobre PostgreSQL.
// La cédula (cc) es la clave natural; no hay ID sintético.
type OwnerRepo struct {
	q Querier
}

func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

const ownerColumns = `
	cc, nombre, apellido, COALESCE(telefono, ''), COALESCE(correo, ''), COALESCE(direccion, ''), fecha_registro`

func (r *OwnerRepo) Create(ctx context.Context, owner *entity.Owner) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO propietario (cc, nombre, apellido, telefono, correo, direccion, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		owner.CC, owner.Nombre, owner.Apellido,
		nullIfEmpty(owner.Telefono), nullIfEmpty(owner.Correo), nullIfEmpty(owner.Direccion),
		owner.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert propietario: %w", err)
	}
	return nil
}

func (r *OwnerRepo) GetByCC(ctx context.Context, cc string) (*entity.Owner, error) {
	query := `SELECT` + ownerColumns + ` FROM propietario WHERE cc = $1`
	o, err := scanOwner(r.q.QueryRow(ctx, query, cc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get propietario: %w", err)
	}
	return o, nil
}

func (r *OwnerRepo) List(ctx context.Context) ([]*entity.Owner, error) {
	query := `SELECT` + ownerColumns + ` FROM propietario ORDER BY apellido, nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query propietarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan propietario: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *OwnerRepo) Update(ctx context.Context, owner *entity.Owner) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE propietario
		SET nombre = $2, apellido = $3, telefono = $4, correo = $5, direccion = $6
		WHERE cc = $1`,
		owner.CC, owner.Nombre, owner.Apellido,
		nullIfEmpty(owner.Telefono), nullIfEmpty(owner.Correo), nullIfEmpty(owner.Direccion),
	)
	if err != nil {
		return fmt.Errorf("update propietario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OwnerRepo) Delete(ctx context.Context, cc string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM propietario WHERE cc = $1`, cc)
	if err != nil {
		return fmt.Errorf("delete propietario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOwner(row pgx.Row) (*entity.Owner, error) {
	var o entity.Owner
	err := row.Scan(&o.CC, &o.Nombre, &o.Apellido, &o.Telefono, &o.Correo, &o.Direccion, &o.FechaRegistro)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
