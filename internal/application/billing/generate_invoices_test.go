package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

type fixture struct {
	uc          *appbilling.GenerateInvoicesUseCase
	accountRepo *fakeAccountRepo
	invoiceRepo *fakeInvoiceRepo
	configRepo  *fakeConfigRepo
}

func newFixture() *fixture {
	accountRepo := newFakeAccountRepo()
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := &fakePaymentRepo{}
	configRepo := &fakeConfigRepo{cfg: defaultConfig()}
	tx := &fakeTxRunner{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
	return &fixture{
		uc:          appbilling.NewGenerateInvoicesUseCase(tx, accountRepo, invoiceRepo, configRepo),
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
		configRepo:  configRepo,
	}
}

// vencida crea una factura con vencimiento en el pasado relativo a ahora.
func vencida(id, cod, periodo string, valor int64, estado string) *entity.Invoice {
	return &entity.Invoice{
		ID:                 id,
		CodMatricula:       cod,
		PeriodoFacturacion: periodo,
		FechaVencimiento:   time.Now().AddDate(0, -1, 0),
		Valor:              decimal.NewFromInt(valor),
		Estado:             estado,
	}
}

func batchReq(periodo string, base int64) dto.GenerateBatchRequest {
	return dto.GenerateBatchRequest{
		PeriodoFacturacion: periodo,
		ValorBase:          decimal.NewFromInt(base),
	}
}

func TestGenerateMassive_SinMoraPrevia(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 50000))
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalMatriculas)
	assert.Equal(t, 1, res.FacturasCreadas)
	assert.Equal(t, 0, res.Errores)

	require.Len(t, res.Detalle.Exitosas, 1)
	ok := res.Detalle.Exitosas[0]
	assert.True(t, ok.ValorTotal.Equal(decimal.NewFromInt(50000)), "sin mora el valor es la tarifa base exacta")
	assert.True(t, ok.ValorMora.IsZero())
	assert.Zero(t, ok.FacturasEnMora)

	inv, _ := f.invoiceRepo.GetByID(context.Background(), ok.FacturaID)
	require.NotNil(t, inv)
	assert.Equal(t, entity.FacturaPendiente, inv.Estado)
	assert.Empty(t, inv.Observaciones, "sin mora las observaciones quedan vacías")
}

func TestGenerateMassive_MoraAcumulada(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	prev := vencida("f-oct", "MAT-001", "2025-10", 500000, entity.FacturaPendiente)
	f.invoiceRepo.add(prev)

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)
	require.Len(t, res.Detalle.Exitosas, 1)

	ok := res.Detalle.Exitosas[0]
	assert.True(t, ok.ValorMora.Equal(decimal.NewFromInt(500000)))
	assert.True(t, ok.ValorTotal.Equal(decimal.NewFromInt(505000)), "total = 5000 base + 500000 mora")
	assert.Equal(t, 1, ok.FacturasEnMora)

	// La factura anterior queda barrida a en_mora.
	assert.Equal(t, entity.FacturaEnMora, prev.Estado)

	inv, _ := f.invoiceRepo.GetByID(context.Background(), ok.FacturaID)
	require.NotNil(t, inv)
	assert.Contains(t, inv.Observaciones, "2025-10: $500000")
}

func TestGenerateMassive_ConMultas(t *testing.T) {
	f := newFixture()
	f.configRepo.cfg.MultaPorFactura = decimal.NewFromInt(5000)
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	f.invoiceRepo.add(vencida("f1", "MAT-001", "2025-09", 500000, entity.FacturaPendiente))
	f.invoiceRepo.add(vencida("f2", "MAT-001", "2025-10", 50000, entity.FacturaVencida))

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)
	require.Len(t, res.Detalle.Exitosas, 1)

	ok := res.Detalle.Exitosas[0]
	assert.True(t, ok.ValorMora.Equal(decimal.NewFromInt(550000)))
	assert.True(t, ok.ValorMultas.Equal(decimal.NewFromInt(10000)), "multa 5000 × 2 facturas")
	// 5000 + 550000 + 10000
	assert.True(t, ok.ValorTotal.Equal(decimal.NewFromInt(565000)))
}

func TestGenerateMassive_GuardianDePeriodo(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)

	_, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)

	// Segunda corrida para el mismo periodo: falla por matrícula, no aborta.
	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)
	assert.Equal(t, 0, res.FacturasCreadas)
	require.Len(t, res.Detalle.Fallidas, 1)
	assert.Equal(t, "MAT-001", res.Detalle.Fallidas[0].Matricula)
	assert.Contains(t, res.Detalle.Fallidas[0].Error, "ya existe factura")

	// Exactamente una factura para la pareja (matrícula, periodo).
	facturas, _ := f.invoiceRepo.ListByAccount(context.Background(), "MAT-001")
	count := 0
	for _, inv := range facturas {
		if inv.PeriodoFacturacion == "2025-11" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGenerateMassive_NoTocaFacturasAjenas(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)

	pagada := vencida("f-pagada", "MAT-001", "2025-08", 9000, entity.FacturaPagada)
	futura := vencida("f-futura", "MAT-001", "2025-10", 7000, entity.FacturaPendiente)
	futura.FechaVencimiento = time.Now().AddDate(0, 1, 0)
	otra := vencida("f-otra", "MAT-999", "2025-09", 8000, entity.FacturaPendiente)
	f.invoiceRepo.add(pagada)
	f.invoiceRepo.add(futura)
	f.invoiceRepo.add(otra)

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)

	ok := res.Detalle.Exitosas[0]
	assert.True(t, ok.ValorMora.IsZero(), "pagadas, futuras y de otra matrícula no suman mora")
	assert.Equal(t, entity.FacturaPagada, pagada.Estado)
	assert.Equal(t, entity.FacturaPendiente, futura.Estado)
	assert.Equal(t, entity.FacturaPendiente, otra.Estado)
}

func TestGenerateMassive_FalloAisladoPorMatricula(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	f.accountRepo.add("MAT-002", entity.AccountEstadoActiva)
	f.accountRepo.add("MAT-003", entity.AccountEstadoActiva)
	f.invoiceRepo.createErrFor["MAT-002"] = errors.New("insert falló")

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalMatriculas)
	assert.Equal(t, 2, res.FacturasCreadas)
	assert.Equal(t, 1, res.Errores)
	require.Len(t, res.Detalle.Fallidas, 1)
	assert.Equal(t, "MAT-002", res.Detalle.Fallidas[0].Matricula)
	assert.Contains(t, res.Detalle.Fallidas[0].Error, "insert falló")
}

func TestGenerateMassive_ReintentoNoDuplicaMora(t *testing.T) {
	// Corrida interrumpida: el barrido marcó en_mora pero la factura nueva no
	// llegó a crearse. El reintento debe seguir viendo el monto (en_mora está
	// en el predicado) y contarlo una sola vez.
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	f.invoiceRepo.add(vencida("f1", "MAT-001", "2025-10", 500000, entity.FacturaEnMora))

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)
	require.Len(t, res.Detalle.Exitosas, 1)
	assert.True(t, res.Detalle.Exitosas[0].ValorMora.Equal(decimal.NewFromInt(500000)))
	assert.True(t, res.Detalle.Exitosas[0].ValorTotal.Equal(decimal.NewFromInt(505000)))
}

func TestGenerateMassive_SoloMatriculasActivas(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	f.accountRepo.add("MAT-002", entity.AccountEstadoSuspendida)

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalMatriculas)
}

func TestGenerateMassive_ErroresFatales(t *testing.T) {
	t.Run("sin matriculas activas", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
		assert.ErrorIs(t, err, domain.ErrNoActiveAccounts)
	})

	t.Run("fallo listando matriculas", func(t *testing.T) {
		f := newFixture()
		f.accountRepo.failList = true
		_, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
		assert.Error(t, err)
	})

	t.Run("fallo leyendo configuracion", func(t *testing.T) {
		f := newFixture()
		f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
		f.configRepo.failGet = true
		_, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
		assert.Error(t, err)
	})

	t.Run("entrada invalida", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.GenerateMassive(context.Background(), batchReq("", 5000))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGenerateMassive_ModoPorcentaje(t *testing.T) {
	f := newFixture()
	f.configRepo.cfg.ModoMora = entity.ModoMoraPorcentajeDeuda
	f.configRepo.cfg.PorcentajeMora = decimal.NewFromInt(10)
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	f.invoiceRepo.add(vencida("f1", "MAT-001", "2025-10", 200000, entity.FacturaPendiente))

	res, err := f.uc.GenerateMassive(context.Background(), batchReq("2025-11", 5000))
	require.NoError(t, err)
	require.Len(t, res.Detalle.Exitosas, 1)
	// 10% de 200000 = 20000
	assert.True(t, res.Detalle.Exitosas[0].ValorMora.Equal(decimal.NewFromInt(20000)))
	assert.True(t, res.Detalle.Exitosas[0].ValorTotal.Equal(decimal.NewFromInt(25000)))
}

func TestGenerateOne(t *testing.T) {
	f := newFixture()
	f.accountRepo.add("MAT-001", entity.AccountEstadoActiva)
	f.accountRepo.add("MAT-002", entity.AccountEstadoCancelada)

	t.Run("crea la factura", func(t *testing.T) {
		created, err := f.uc.GenerateOne(context.Background(), dto.GenerateOneRequest{
			CodMatricula:         "MAT-001",
			GenerateBatchRequest: batchReq("2025-11", 5000),
		})
		require.NoError(t, err)
		assert.True(t, created.ValorTotal.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("matricula inexistente", func(t *testing.T) {
		_, err := f.uc.GenerateOne(context.Background(), dto.GenerateOneRequest{
			CodMatricula:         "MAT-404",
			GenerateBatchRequest: batchReq("2025-11", 5000),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("matricula no activa", func(t *testing.T) {
		_, err := f.uc.GenerateOne(context.Background(), dto.GenerateOneRequest{
			CodMatricula:         "MAT-002",
			GenerateBatchRequest: batchReq("2025-11", 5000),
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
