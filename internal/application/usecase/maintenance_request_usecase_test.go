package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo(codes ...string) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: map[string]*entity.Account{}}
	for _, cod := range codes {
		r.accounts[cod] = &entity.Account{CodMatricula: cod, Estado: entity.AccountEstadoActiva}
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.accounts[a.CodMatricula] = a
	return nil
}

func (r *fakeAccountRepo) GetByCode(_ context.Context, cod string) (*entity.Account, error) {
	return r.accounts[cod], nil
}

func (r *fakeAccountRepo) ListActive(context.Context) ([]*entity.Account, error) { return nil, nil }
func (r *fakeAccountRepo) List(context.Context) ([]*entity.Account, error)       { return nil, nil }
func (r *fakeAccountRepo) ListByOwner(context.Context, string) ([]*entity.Account, error) {
	return nil, nil
}
func (r *fakeAccountRepo) HasActiveForProperty(context.Context, string) (bool, error) {
	return false, nil
}
func (r *fakeAccountRepo) UpdateEstado(context.Context, string, string) error { return nil }
func (r *fakeAccountRepo) Delete(context.Context, string) error               { return nil }

type fakeTypeRepo struct {
	types map[string]*entity.MaintenanceType
}

func newFakeTypeRepo(types ...*entity.MaintenanceType) *fakeTypeRepo {
	r := &fakeTypeRepo{types: map[string]*entity.MaintenanceType{}}
	for _, t := range types {
		r.types[t.ID] = t
	}
	return r
}

func (r *fakeTypeRepo) Create(_ context.Context, t *entity.MaintenanceType) error {
	r.types[t.ID] = t
	return nil
}

func (r *fakeTypeRepo) GetByID(_ context.Context, id string) (*entity.MaintenanceType, error) {
	return r.types[id], nil
}

func (r *fakeTypeRepo) ListActive(context.Context) ([]*entity.MaintenanceType, error) {
	var out []*entity.MaintenanceType
	for _, t := range r.types {
		if t.Activo {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.MaintenanceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*entity.MaintenanceRequest{}}
}

func (r *fakeRequestRepo) Create(_ context.Context, s *entity.MaintenanceRequest) error {
	if _, ok := r.requests[s.CodigoSolicitud]; ok {
		return domain.ErrDuplicate
	}
	r.requests[s.CodigoSolicitud] = s
	return nil
}

func (r *fakeRequestRepo) GetByCodigo(_ context.Context, codigo string) (*entity.MaintenanceRequestDetail, error) {
	s, ok := r.requests[codigo]
	if !ok {
		return nil, nil
	}
	return &entity.MaintenanceRequestDetail{MaintenanceRequest: *s, TipoNombre: "Fuga", Direccion: "Calle 1"}, nil
}

func (r *fakeRequestRepo) List(ctx context.Context) ([]*entity.MaintenanceRequestDetail, error) {
	var out []*entity.MaintenanceRequestDetail
	for codigo := range r.requests {
		d, _ := r.GetByCodigo(ctx, codigo)
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeRequestRepo) Search(ctx context.Context, termino string) ([]*entity.MaintenanceRequestDetail, error) {
	var out []*entity.MaintenanceRequestDetail
	for codigo, s := range r.requests {
		if s.CodMatricula == termino || s.CedulaSolicitante == termino || codigo == termino {
			d, _ := r.GetByCodigo(ctx, codigo)
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateEstado(_ context.Context, codigo, estado string) error {
	s, ok := r.requests[codigo]
	if !ok {
		return domain.ErrNotFound
	}
	s.Estado = estado
	return nil
}

type fakeReportRepo struct {
	reports map[string]*entity.MaintenanceReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]*entity.MaintenanceReport{}}
}

func (r *fakeReportRepo) Create(_ context.Context, rep *entity.MaintenanceReport) error {
	r.reports[rep.ID] = rep
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id string) (*entity.MaintenanceReportDetail, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	return &entity.MaintenanceReportDetail{MaintenanceReport: *rep}, nil
}

func (r *fakeReportRepo) List(context.Context) ([]*entity.MaintenanceReportDetail, error) {
	return nil, nil
}

func (r *fakeReportRepo) Search(context.Context, string) ([]*entity.MaintenanceReportDetail, error) {
	return nil, nil
}

// fakeTxRunner pasa los mismos fakes como repos transaccionales.
type fakeTxRunner struct {
	reports  *fakeReportRepo
	requests *fakeRequestRepo
}

func (r *fakeTxRunner) RunMaintenanceReport(ctx context.Context, fn func(
	reportRepo repository.MaintenanceReportRepository,
	requestRepo repository.MaintenanceRequestRepository,
) error) error {
	return fn(r.reports, r.requests)
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes
// ──────────────────────────────────────────────────────────────────────────────

var codigoSolicitudRe = regexp.MustCompile(`^SOL-\d{4}-\d{6}$`)

func newSolicitudUC(requests *fakeRequestRepo) *usecase.MaintenanceRequestUseCase {
	types := newFakeTypeRepo(&entity.MaintenanceType{ID: "tipo-fuga", Nombre: "Fuga", Activo: true})
	accounts := newFakeAccountRepo("MAT-001")
	return usecase.NewMaintenanceRequestUseCase(requests, types, accounts)
}

func TestCreateSolicitud_GeneraCodigoYDefaults(t *testing.T) {
	requests := newFakeRequestRepo()
	uc := newSolicitudUC(requests)

	out, err := uc.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-001",
		TipoID:            "tipo-fuga",
		CedulaSolicitante: "1001001001",
		Observaciones:     "Fuga en la acometida",
	})
	require.NoError(t, err)
	assert.Regexp(t, codigoSolicitudRe, out.CodigoSolicitud)

	s := requests.requests[out.CodigoSolicitud]
	require.NotNil(t, s)
	assert.Equal(t, entity.PrioridadMedia, s.Prioridad, "sin prioridad explícita queda en media")
	assert.Equal(t, entity.SolicitudPendiente, s.Estado)
	assert.Equal(t, time.Now().Year(), s.FechaSolicitud.Year())
}

func TestCreateSolicitud_MatriculaInexistente(t *testing.T) {
	uc := newSolicitudUC(newFakeRequestRepo())

	_, err := uc.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-999",
		TipoID:            "tipo-fuga",
		CedulaSolicitante: "1001001001",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSolicitud_TipoInactivoRechazado(t *testing.T) {
	requests := newFakeRequestRepo()
	types := newFakeTypeRepo(&entity.MaintenanceType{ID: "tipo-viejo", Nombre: "Obsoleto", Activo: false})
	uc := usecase.NewMaintenanceRequestUseCase(requests, types, newFakeAccountRepo("MAT-001"))

	_, err := uc.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-001",
		TipoID:            "tipo-viejo",
		CedulaSolicitante: "1001001001",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSolicitud_PrioridadInvalida(t *testing.T) {
	uc := newSolicitudUC(newFakeRequestRepo())

	_, err := uc.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-001",
		TipoID:            "tipo-fuga",
		CedulaSolicitante: "1001001001",
		Prioridad:         "urgentísima",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateEstadoSolicitud(t *testing.T) {
	requests := newFakeRequestRepo()
	uc := newSolicitudUC(requests)

	out, err := uc.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-001",
		TipoID:            "tipo-fuga",
		CedulaSolicitante: "1001001001",
	})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateEstado(context.Background(), out.CodigoSolicitud, entity.SolicitudEnProceso))
	assert.Equal(t, entity.SolicitudEnProceso, requests.requests[out.CodigoSolicitud].Estado)

	assert.ErrorIs(t, uc.UpdateEstado(context.Background(), out.CodigoSolicitud, "archivada"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateEstado(context.Background(), "SOL-2026-000000", entity.SolicitudCancelada), domain.ErrNotFound)
}

func TestSearchSolicitudes_PorMatriculaCedulaOCodigo(t *testing.T) {
	requests := newFakeRequestRepo()
	uc := newSolicitudUC(requests)

	out, err := uc.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-001",
		TipoID:            "tipo-fuga",
		CedulaSolicitante: "1001001001",
	})
	require.NoError(t, err)

	for _, termino := range []string{"MAT-001", "1001001001", out.CodigoSolicitud} {
		found, err := uc.Search(context.Background(), termino)
		require.NoError(t, err)
		require.Len(t, found, 1, "término %q debe encontrar la solicitud", termino)
		assert.Equal(t, out.CodigoSolicitud, found[0].CodigoSolicitud)
	}

	empty, err := uc.Search(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = uc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateReporte_CierraLaSolicitud(t *testing.T) {
	requests := newFakeRequestRepo()
	reports := newFakeReportRepo()
	solicitudUC := newSolicitudUC(requests)
	reporteUC := usecase.NewMaintenanceReportUseCase(reports, requests, &fakeTxRunner{reports: reports, requests: requests})

	created, err := solicitudUC.Create(context.Background(), dto.CreateSolicitudRequest{
		CodMatricula:      "MAT-001",
		TipoID:            "tipo-fuga",
		CedulaSolicitante: "1001001001",
	})
	require.NoError(t, err)

	out, err := reporteUC.Create(context.Background(), dto.CreateReporteRequest{
		CodigoSolicitud:    created.CodigoSolicitud,
		CedulaFontanero:    "2002002002",
		DescripcionTrabajo: "Cambio de acometida",
		MaterialesUsados:   "Tubo PVC 1/2, soldadura",
		Costo:              decimal.NewFromInt(85000),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	rep := reports.reports[out.ID]
	require.NotNil(t, rep)
	assert.Equal(t, entity.SolicitudCompletada, rep.EstadoFinal, "sin estado_final explícito queda completado")
	assert.Equal(t, entity.SolicitudCompletada, requests.requests[created.CodigoSolicitud].Estado,
		"crear el reporte debe dejar la solicitud completada")
}

func TestCreateReporte_SolicitudInexistente(t *testing.T) {
	requests := newFakeRequestRepo()
	reports := newFakeReportRepo()
	uc := usecase.NewMaintenanceReportUseCase(reports, requests, &fakeTxRunner{reports: reports, requests: requests})

	_, err := uc.Create(context.Background(), dto.CreateReporteRequest{
		CodigoSolicitud:    "SOL-2026-000000",
		DescripcionTrabajo: "Cambio de acometida",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, reports.reports)
}

func TestCreateReporte_CostoNegativoRechazado(t *testing.T) {
	requests := newFakeRequestRepo()
	reports := newFakeReportRepo()
	uc := usecase.NewMaintenanceReportUseCase(reports, requests, &fakeTxRunner{reports: reports, requests: requests})

	_, err := uc.Create(context.Background(), dto.CreateReporteRequest{
		CodigoSolicitud:    "SOL-2026-111111",
		DescripcionTrabajo: "Trabajo",
		Costo:              decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
