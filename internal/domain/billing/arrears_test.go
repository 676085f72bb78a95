package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acueducto-api/internal/domain/billing"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

func factura(id, periodo string, valor int64) *entity.Invoice {
	return &entity.Invoice{
		ID:                 id,
		CodMatricula:       "MAT-001",
		PeriodoFacturacion: periodo,
		FechaVencimiento:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Valor:              decimal.NewFromInt(valor),
		Estado:             entity.FacturaPendiente,
	}
}

func TestCompute_SinFacturasVencidas(t *testing.T) {
	res := billing.Compute(billing.DefaultPolicy(), nil)

	assert.False(t, res.HasArrears())
	assert.True(t, res.Mora.IsZero())
	assert.True(t, res.Multas.IsZero())
	assert.Empty(t, res.Observaciones(), "sin mora las observaciones deben quedar vacías (NULL en DB)")
	assert.True(t, res.Total(decimal.NewFromInt(50000)).Equal(decimal.NewFromInt(50000)),
		"sin mora el total es exactamente la tarifa base")
}

func TestCompute_SumaAcumulada(t *testing.T) {
	overdue := []*entity.Invoice{
		factura("f1", "2025-09", 500000),
		factura("f2", "2025-10", 50000),
	}
	res := billing.Compute(billing.DefaultPolicy(), overdue)

	require.True(t, res.HasArrears())
	assert.True(t, res.Mora.Equal(decimal.NewFromInt(550000)), "mora = suma exacta de los valores")
	assert.True(t, res.Multas.IsZero())
	assert.Len(t, res.Items, 2)
	assert.True(t, res.Total(decimal.NewFromInt(5000)).Equal(decimal.NewFromInt(555000)))
}

func TestCompute_SumaExactaSinDeriva(t *testing.T) {
	// Valores con centavos que en float64 acumulan error de redondeo.
	v, err := decimal.NewFromString("333333.33")
	require.NoError(t, err)

	var overdue []*entity.Invoice
	for i := 0; i < 30; i++ {
		f := factura("f", "2025-01", 0)
		f.Valor = v
		overdue = append(overdue, f)
	}
	res := billing.Compute(billing.DefaultPolicy(), overdue)

	want, err := decimal.NewFromString("9999999.90")
	require.NoError(t, err)
	assert.True(t, res.Mora.Equal(want), "la suma decimal debe ser exacta: %s", res.Mora)
}

func TestCompute_PorcentajeDeuda(t *testing.T) {
	overdue := []*entity.Invoice{
		factura("f1", "2025-09", 100000),
		factura("f2", "2025-10", 100000),
	}
	p := billing.Policy{
		Modo:           entity.ModoMoraPorcentajeDeuda,
		PorcentajeMora: decimal.NewFromInt(5),
	}
	res := billing.Compute(p, overdue)

	// 5% de 200000 = 10000
	assert.True(t, res.Mora.Equal(decimal.NewFromInt(10000)), "mora = 5%% de la deuda: %s", res.Mora)
	assert.True(t, res.Total(decimal.NewFromInt(5000)).Equal(decimal.NewFromInt(15000)))
}

func TestCompute_MultaFijaPorFactura(t *testing.T) {
	overdue := []*entity.Invoice{
		factura("f1", "2025-09", 500000),
		factura("f2", "2025-10", 50000),
	}
	p := billing.DefaultPolicy()
	p.MultaPorFactura = decimal.NewFromInt(5000)
	res := billing.Compute(p, overdue)

	assert.True(t, res.Mora.Equal(decimal.NewFromInt(550000)))
	assert.True(t, res.Multas.Equal(decimal.NewFromInt(10000)), "multa = 5000 × 2 facturas")
	// Escenario de referencia: 5000 + 550000 + 10000 = 565000
	assert.True(t, res.Total(decimal.NewFromInt(5000)).Equal(decimal.NewFromInt(565000)))
}

func TestObservaciones_Desglose(t *testing.T) {
	overdue := []*entity.Invoice{factura("f1", "2025-10", 500000)}
	res := billing.Compute(billing.DefaultPolicy(), overdue)

	obs := res.Observaciones()
	assert.Contains(t, obs, "Incluye mora acumulada: $500000.")
	assert.Contains(t, obs, "2025-10: $500000")
}

func TestObservaciones_Determinista(t *testing.T) {
	overdue := []*entity.Invoice{
		factura("f1", "2025-09", 500000),
		factura("f2", "2025-10", 50000),
	}
	p := billing.DefaultPolicy()
	p.MultaPorFactura = decimal.NewFromInt(5000)

	obs1 := billing.Compute(p, overdue).Observaciones()
	obs2 := billing.Compute(p, overdue).Observaciones()
	assert.Equal(t, obs1, obs2, "el mismo desglose siempre produce la misma cadena")
	assert.Contains(t, obs1, "Multas: $10000 (2 factura(s) en mora).")
}
