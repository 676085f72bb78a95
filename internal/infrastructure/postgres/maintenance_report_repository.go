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

var _ repository.MaintenanceReportRepository = (*MaintenanceReportRepo)(nil)

// MaintenanceReportRepo implementación de MaintenanceReportRepository
// sobre PostgreSQL.
type MaintenanceReportRepo struct {
	q Querier
}

func NewMaintenanceReportRepository(q Querier) *MaintenanceReportRepo {
	return &MaintenanceReportRepo{q: q}
}

// reportDetailQuery resuelve la solicitud, el predio, el solicitante y el
// fontanero de cada reporte. El fontanero va por LEFT JOIN: el trabajo pudo
// haberlo hecho un contratista sin usuario en el sistema.
const reportDetailQuery = `
	SELECT r.id, r.codigo_solicitud, COALESCE(r.cedula_fontanero, ''),
	       r.descripcion_trabajo, COALESCE(r.materiales_usados, ''), r.costo,
	       r.estado_final, COALESCE(r.observaciones_finales, ''), r.fecha_realizacion,
	       s.cod_matricula, COALESCE(s.observaciones, ''),
	       p.direccion,
	       COALESCE(f.nombre, ''), COALESCE(f.apellido, ''),
	       u.nombre, COALESCE(u.apellido, '')
	FROM reporte_mantenimiento r
	JOIN solicitud_mantenimiento s ON s.codigo_solicitud = r.codigo_solicitud
	JOIN matricula m               ON m.cod_matricula = s.cod_matricula
	JOIN predio p                  ON p.id = m.id_predio
	JOIN usuario u                 ON u.cedula = s.cedula_solicitante
	LEFT JOIN usuario f            ON f.cedula = r.cedula_fontanero`

func (r *MaintenanceReportRepo) Create(ctx context.Context, rep *entity.MaintenanceReport) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO reporte_mantenimiento
			(id, codigo_solicitud, cedula_fontanero, descripcion_trabajo,
			 materiales_usados, costo, estado_final, observaciones_finales, fecha_realizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rep.ID, rep.CodigoSolicitud, nullIfEmpty(rep.CedulaFontanero), rep.DescripcionTrabajo,
		nullIfEmpty(rep.MaterialesUsados), rep.Costo, rep.EstadoFinal,
		nullIfEmpty(rep.ObservacionesFinales), rep.FechaRealizacion,
	)
	if err != nil {
		return fmt.Errorf("insert reporte_mantenimiento: %w", err)
	}
	return nil
}

func (r *MaintenanceReportRepo) GetByID(ctx context.Context, id string) (*entity.MaintenanceReportDetail, error) {
	row := r.q.QueryRow(ctx, reportDetailQuery+` WHERE r.id = $1`, id)
	d, err := scanReportDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reporte: %w", err)
	}
	return d, nil
}

func (r *MaintenanceReportRepo) List(ctx context.Context) ([]*entity.MaintenanceReportDetail, error) {
	return r.queryDetails(ctx, reportDetailQuery+` ORDER BY r.fecha_realizacion DESC`)
}

func (r *MaintenanceReportRepo) Search(ctx context.Context, termino string) ([]*entity.MaintenanceReportDetail, error) {
	return r.queryDetails(ctx, reportDetailQuery+`
		WHERE r.codigo_solicitud = $1 OR s.cod_matricula = $1 OR s.cedula_solicitante = $1
		ORDER BY r.fecha_realizacion DESC`, termino)
}

func (r *MaintenanceReportRepo) queryDetails(ctx context.Context, query string, args ...any) ([]*entity.MaintenanceReportDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reportes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaintenanceReportDetail
	for rows.Next() {
		d, err := scanReportDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reporte: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanReportDetail(row pgx.Row) (*entity.MaintenanceReportDetail, error) {
	var d entity.MaintenanceReportDetail
	err := row.Scan(
		&d.ID, &d.CodigoSolicitud, &d.CedulaFontanero,
		&d.DescripcionTrabajo, &d.MaterialesUsados, &d.Costo,
		&d.EstadoFinal, &d.ObservacionesFinales, &d.FechaRealizacion,
		&d.CodMatricula, &d.SolicitudObservaciones,
		&d.Direccion,
		&d.FontaneroNombre, &d.FontaneroApellido,
		&d.SolicitanteNombre, &d.SolicitanteApellido,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
