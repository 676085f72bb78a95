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

var _ repository.MaintenanceRequestRepository = (*MaintenanceRequestRepo)(nil)

// MaintenanceRequestRepo implementación de MaintenanceRequestRepository
// sobre PostgreSQL.
type MaintenanceRequestRepo struct {
	q Querier
}

func NewMaintenanceRequestRepository(q Querier) *MaintenanceRequestRepo {
	return &MaintenanceRequestRepo{q: q}
}

// requestDetailQuery resuelve tipo, solicitante y predio de cada solicitud.
// El solicitante es un usuario del sistema, por cédula.
const requestDetailQuery = `
	SELECT s.codigo_solicitud, s.cod_matricula, s.id_tipo, s.cedula_solicitante,
	       COALESCE(s.observaciones, ''), s.prioridad, s.estado, s.fecha_solicitud,
	       t.nombre, COALESCE(t.descripcion, ''),
	       u.nombre, COALESCE(u.apellido, ''),
	       p.direccion, COALESCE(p.telefono, '')
	FROM solicitud_mantenimiento s
	JOIN tipo_mantenimiento t ON t.id = s.id_tipo
	JOIN usuario u            ON u.cedula = s.cedula_solicitante
	JOIN matricula m          ON m.cod_matricula = s.cod_matricula
	JOIN predio p             ON p.id = m.id_predio`

func (r *MaintenanceRequestRepo) Create(ctx context.Context, s *entity.MaintenanceRequest) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO solicitud_mantenimiento
			(codigo_solicitud, cod_matricula, id_tipo, cedula_solicitante,
			 observaciones, prioridad, estado, fecha_solicitud)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.CodigoSolicitud, s.CodMatricula, s.TipoID, s.CedulaSolicitante,
		nullIfEmpty(s.Observaciones), s.Prioridad, s.Estado, s.FechaSolicitud,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert solicitud_mantenimiento: %w", err)
	}
	return nil
}

func (r *MaintenanceRequestRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.MaintenanceRequestDetail, error) {
	row := r.q.QueryRow(ctx, requestDetailQuery+` WHERE s.codigo_solicitud = $1`, codigo)
	d, err := scanRequestDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return d, nil
}

func (r *MaintenanceRequestRepo) List(ctx context.Context) ([]*entity.MaintenanceRequestDetail, error) {
	return r.queryDetails(ctx, requestDetailQuery+` ORDER BY s.fecha_solicitud DESC`)
}

func (r *MaintenanceRequestRepo) Search(ctx context.Context, termino string) ([]*entity.MaintenanceRequestDetail, error) {
	return r.queryDetails(ctx, requestDetailQuery+`
		WHERE s.cod_matricula = $1 OR s.cedula_solicitante = $1 OR s.codigo_solicitud = $1
		ORDER BY s.fecha_solicitud DESC`, termino)
}

func (r *MaintenanceRequestRepo) UpdateEstado(ctx context.Context, codigo, estado string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE solicitud_mantenimiento SET estado = $2 WHERE codigo_solicitud = $1`,
		codigo, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado solicitud: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRequestRepo) queryDetails(ctx context.Context, query string, args ...any) ([]*entity.MaintenanceRequestDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceRequestDetail
	for rows.Next() {
		d, err := scanRequestDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanRequestDetail(row pgx.Row) (*entity.MaintenanceRequestDetail, error) {
	var d entity.MaintenanceRequestDetail
	err := row.Scan(
		&d.CodigoSolicitud, &d.CodMatricula, &d.TipoID, &d.CedulaSolicitante,
		&d.Observaciones, &d.Prioridad, &d.Estado, &d.FechaSolicitud,
		&d.TipoNombre, &d.TipoDescripcion,
		&d.SolicitanteNombre, &d.SolicitanteApellido,
		&d.Direccion, &d.Telefono,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
