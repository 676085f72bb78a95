package billing

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
	"github.com/jhoicas/acueducto-api/internal/observability/metrics"
)

// OverdueSweepUseCase pasa a en_mora las facturas vencidas sin pagar
// (endpoint actualizar-mora). Es el mismo barrido que hace la facturación
// masiva por matrícula, pero global y sin emitir facturas nuevas.
type OverdueSweepUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewOverdueSweepUseCase construye el caso de uso.
func NewOverdueSweepUseCase(invoiceRepo repository.InvoiceRepository) *OverdueSweepUseCase {
	return &OverdueSweepUseCase{invoiceRepo: invoiceRepo}
}

// Sweep marca en_mora toda factura Pendiente o Vencida con fecha de
// vencimiento anterior a hoy. Cero facturas vencidas no es un error.
func (uc *OverdueSweepUseCase) Sweep(ctx context.Context) (*dto.SweepResult, error) {
	hoy := time.Now()
	vencidas, err := uc.invoiceRepo.ListOverdue(ctx, hoy)
	if err != nil {
		return nil, err
	}
	if len(vencidas) == 0 {
		return &dto.SweepResult{Message: "No hay facturas vencidas para actualizar"}, nil
	}

	var ids []string
	for _, f := range vencidas {
		if err := uc.invoiceRepo.UpdateEstado(ctx, f.ID, entity.FacturaEnMora); err != nil {
			// Se continúa con el resto; la factura que falló queda para el siguiente barrido.
			log.Warn().Err(err).Str("factura", f.ID).Msg("no se pudo marcar en mora")
			continue
		}
		ids = append(ids, f.ID)
	}
	metrics.AddSweepMarked(len(ids))
	return &dto.SweepResult{
		Message:              "Facturas actualizadas a estado en mora",
		FacturasActualizadas: len(ids),
		IDs:                  ids,
	}, nil
}
