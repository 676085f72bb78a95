package billing_test

import (
	"context"
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

func newPaymentFixture() (*appbilling.RegisterPaymentUseCase, *fakeInvoiceRepo, *fakePaymentRepo) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := &fakePaymentRepo{}
	tx := &fakeTxRunner{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
	return appbilling.NewRegisterPaymentUseCase(tx, invoiceRepo, paymentRepo), invoiceRepo, paymentRepo
}

func pendiente(id string, valor int64) *entity.Invoice {
	return &entity.Invoice{
		ID:                 id,
		CodMatricula:       "MAT-001",
		PeriodoFacturacion: "2025-11",
		FechaVencimiento:   time.Now().AddDate(0, 0, 15),
		Valor:              decimal.NewFromInt(valor),
		Estado:             entity.FacturaPendiente,
	}
}

func TestRegisterPayment_AbonoParcial(t *testing.T) {
	uc, invoiceRepo, _ := newPaymentFixture()
	invoiceRepo.add(pendiente("f1", 50000))

	res, err := uc.Register(context.Background(), "f1", dto.RegisterPaymentRequest{
		MetodoPago: entity.PagoEfectivo,
		Valor:      decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	assert.True(t, res.TotalPagado.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, entity.FacturaPendiente, res.Estado, "un abono parcial no cambia el estado")
}

func TestRegisterPayment_PagoCompletoEnVariosAbonos(t *testing.T) {
	uc, invoiceRepo, _ := newPaymentFixture()
	invoiceRepo.add(pendiente("f1", 50000))

	_, err := uc.Register(context.Background(), "f1", dto.RegisterPaymentRequest{
		MetodoPago: entity.PagoEfectivo,
		Valor:      decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	res, err := uc.Register(context.Background(), "f1", dto.RegisterPaymentRequest{
		MetodoPago: entity.PagoTransferencia,
		Valor:      decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	assert.True(t, res.TotalPagado.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, entity.FacturaPagada, res.Estado)

	inv, _ := invoiceRepo.GetByID(context.Background(), "f1")
	assert.Equal(t, entity.FacturaPagada, inv.Estado)
}

func TestRegisterPayment_EnMoraTambienSePaga(t *testing.T) {
	uc, invoiceRepo, _ := newPaymentFixture()
	f := pendiente("f1", 10000)
	f.Estado = entity.FacturaEnMora
	invoiceRepo.add(f)

	res, err := uc.Register(context.Background(), "f1", dto.RegisterPaymentRequest{
		MetodoPago: entity.PagoConsignacion,
		Valor:      decimal.NewFromInt(10000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaPagada, res.Estado)
}

func TestRegisterPayment_Errores(t *testing.T) {
	uc, invoiceRepo, _ := newPaymentFixture()
	pagada := pendiente("f-pagada", 10000)
	pagada.Estado = entity.FacturaPagada
	invoiceRepo.add(pagada)

	t.Run("factura inexistente", func(t *testing.T) {
		_, err := uc.Register(context.Background(), "f-404", dto.RegisterPaymentRequest{
			Valor: decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("factura ya pagada", func(t *testing.T) {
		_, err := uc.Register(context.Background(), "f-pagada", dto.RegisterPaymentRequest{
			Valor: decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("valor no positivo", func(t *testing.T) {
		_, err := uc.Register(context.Background(), "f-pagada", dto.RegisterPaymentRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("fecha invalida", func(t *testing.T) {
		invoiceRepo.add(pendiente("f2", 10000))
		_, err := uc.Register(context.Background(), "f2", dto.RegisterPaymentRequest{
			FechaPago: "15/11/2025",
			Valor:     decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOverdueSweep(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	uc := appbilling.NewOverdueSweepUseCase(invoiceRepo)

	vencidaF := pendiente("f1", 10000)
	vencidaF.FechaVencimiento = time.Now().AddDate(0, -1, 0)
	vigente := pendiente("f2", 10000)
	invoiceRepo.add(vencidaF)
	invoiceRepo.add(vigente)

	res, err := uc.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.FacturasActualizadas)
	assert.Equal(t, []string{"f1"}, res.IDs)
	assert.Equal(t, entity.FacturaEnMora, vencidaF.Estado)
	assert.Equal(t, entity.FacturaPendiente, vigente.Estado)

	t.Run("sin vencidas es no-op", func(t *testing.T) {
		res, err := uc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Zero(t, res.FacturasActualizadas)
	})
}
