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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `
	cod_matricula, id_predio, estado, COALESCE(observaciones, ''), fecha_creacion`

// Create registra una matrícula nueva.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO matricula (cod_matricula, id_predio, estado, observaciones, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)`,
		account.CodMatricula, account.PredioID, account.Estado,
		nullIfEmpty(account.Observaciones), account.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert matricula: %w", err)
	}
	return nil
}

// GetByCode obtiene una matrícula por su código; (nil, nil) si no existe.
func (r *AccountRepo) GetByCode(ctx context.Context, codMatricula string) (*entity.Account, error) {
	query := `SELECT` + accountColumns + ` FROM matricula WHERE cod_matricula = $1`
	acc, err := scanAccount(r.q.QueryRow(ctx, query, codMatricula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get matricula: %w", err)
	}
	return acc, nil
}

// ListActive devuelve las matrículas activas, entrada de la facturación masiva.
func (r *AccountRepo) ListActive(ctx context.Context) ([]*entity.Account, error) {
	query := `SELECT` + accountColumns + ` FROM matricula WHERE estado = $1 ORDER BY cod_matricula`
	return r.queryAccounts(ctx, query, entity.AccountEstadoActiva)
}

// List devuelve todas las matrículas.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	query := `SELECT` + accountColumns + ` FROM matricula ORDER BY cod_matricula`
	return r.queryAccounts(ctx, query)
}

// ListByOwner devuelve las matrículas de los predios de un propietario.
func (r *AccountRepo) ListByOwner(ctx context.Context, cc string) ([]*entity.Account, error) {
	query := `
		SELECT m.cod_matricula, m.id_predio, m.estado, COALESCE(m.observaciones, ''), m.fecha_creacion
		FROM matricula m
		JOIN predio p ON p.id = m.id_predio
		WHERE p.cc_propietario = $1
		ORDER BY m.cod_matricula`
	return r.queryAccounts(ctx, query, cc)
}

// HasActiveForProperty indica si el predio ya tiene matrícula activa.
func (r *AccountRepo) HasActiveForProperty(ctx context.Context, predioID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM matricula WHERE id_predio = $1 AND estado = $2)`,
		predioID, entity.AccountEstadoActiva,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists matricula activa: %w", err)
	}
	return exists, nil
}

// UpdateEstado cambia el estado de una matrícula.
func (r *AccountRepo) UpdateEstado(ctx context.Context, codMatricula, estado string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE matricula SET estado = $2 WHERE cod_matricula = $1`, codMatricula, estado)
	if err != nil {
		return fmt.Errorf("update estado matricula: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una matrícula sin facturas asociadas.
func (r *AccountRepo) Delete(ctx context.Context, codMatricula string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM matricula WHERE cod_matricula = $1`, codMatricula)
	if err != nil {
		return fmt.Errorf("delete matricula: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepo) queryAccounts(ctx context.Context, query string, args ...any) ([]*entity.Account, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query matriculas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan matricula: %w", err)
		}
		list = append(list, acc)
	}
	return list, rows.Err()
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var acc entity.Account
	err := row.Scan(&acc.CodMatricula, &acc.PredioID, &acc.Estado, &acc.Observaciones, &acc.FechaCreacion)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
