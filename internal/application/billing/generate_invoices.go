package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/acueducto-api/internal/application/dto"
	"github.com/jhoicas/acueducto-api/internal/domain"
	domainbilling "github.com/jhoicas/acueducto-api/internal/domain/billing"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
	"github.com/jhoicas/acueducto-api/internal/observability/metrics"
)

const defaultDiasVencimiento = 15

// GenerateInvoicesUseCase genera las facturas del periodo para las matrículas
// activas, acumulando la mora de facturas anteriores sin pagar.
//
// Por cada matrícula el flujo es: guardián de periodo (¿ya existe factura
// para este periodo?) → cálculo de mora sobre las facturas vencidas →
// marcado de esas facturas como en_mora → inserción de la factura nueva.
// Un fallo en una matrícula se registra como entrada fallida y la corrida
// continúa; solo la carga inicial de matrículas o de configuración aborta todo.
type GenerateInvoicesUseCase struct {
	txRunner    BillingTxRunner
	accountRepo repository.AccountRepository
	invoiceRepo repository.InvoiceRepository
	configRepo  repository.BillingConfigRepository
}

// NewGenerateInvoicesUseCase construye el caso de uso.
func NewGenerateInvoicesUseCase(
	txRunner BillingTxRunner,
	accountRepo repository.AccountRepository,
	invoiceRepo repository.InvoiceRepository,
	configRepo repository.BillingConfigRepository,
) *GenerateInvoicesUseCase {
	return &GenerateInvoicesUseCase{
		txRunner:    txRunner,
		accountRepo: accountRepo,
		invoiceRepo: invoiceRepo,
		configRepo:  configRepo,
	}
}

// GenerateMassive procesa todas las matrículas activas, una a la vez.
// La lista de matrículas se consulta una sola vez al inicio: una matrícula
// activada a mitad de corrida no entra en esta corrida.
func (uc *GenerateInvoicesUseCase) GenerateMassive(ctx context.Context, in dto.GenerateBatchRequest) (*dto.BatchResult, error) {
	if in.PeriodoFacturacion == "" || !in.ValorBase.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	policy, diasVencimiento, err := uc.resolvePolicy(ctx, in)
	if err != nil {
		// Sin configuración no hay política de mora definida: error fatal de corrida.
		return nil, err
	}

	accounts, err := uc.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrNoActiveAccounts
	}

	start := time.Now()
	fechaEmision := start
	fechaVencimiento := fechaEmision.AddDate(0, 0, diasVencimiento)

	result := &dto.BatchResult{
		Message:         "Proceso de facturación masiva completado",
		TotalMatriculas: len(accounts),
	}
	for _, account := range accounts {
		created, err := uc.generateForAccount(
			ctx, account.CodMatricula, in.PeriodoFacturacion,
			in.ValorBase, fechaEmision, fechaVencimiento, policy,
		)
		if err != nil {
			result.Detalle.Fallidas = append(result.Detalle.Fallidas, dto.InvoiceFailed{
				Matricula: account.CodMatricula,
				Error:     err.Error(),
			})
			continue
		}
		result.Detalle.Exitosas = append(result.Detalle.Exitosas, *created)
	}
	result.FacturasCreadas = len(result.Detalle.Exitosas)
	result.Errores = len(result.Detalle.Fallidas)

	metrics.ObserveBatchRun(result.FacturasCreadas, result.Errores, time.Since(start))
	log.Info().
		Str("periodo", in.PeriodoFacturacion).
		Int("matriculas", result.TotalMatriculas).
		Int("creadas", result.FacturasCreadas).
		Int("errores", result.Errores).
		Msg("facturación masiva completada")

	return result, nil
}

// GenerateOne genera la factura del periodo para una sola matrícula.
func (uc *GenerateInvoicesUseCase) GenerateOne(ctx context.Context, in dto.GenerateOneRequest) (*dto.InvoiceCreated, error) {
	if in.CodMatricula == "" || in.PeriodoFacturacion == "" || !in.ValorBase.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	account, err := uc.accountRepo.GetByCode(ctx, in.CodMatricula)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if !account.IsActive() {
		return nil, domain.ErrConflict
	}

	policy, diasVencimiento, err := uc.resolvePolicy(ctx, in.GenerateBatchRequest)
	if err != nil {
		return nil, err
	}
	fechaEmision := time.Now()
	return uc.generateForAccount(
		ctx, in.CodMatricula, in.PeriodoFacturacion,
		in.ValorBase, fechaEmision, fechaEmision.AddDate(0, 0, diasVencimiento), policy,
	)
}

// resolvePolicy combina la configuración activa con los overrides del request.
func (uc *GenerateInvoicesUseCase) resolvePolicy(ctx context.Context, in dto.GenerateBatchRequest) (domainbilling.Policy, int, error) {
	cfg, err := uc.configRepo.GetActive(ctx)
	if err != nil {
		return domainbilling.Policy{}, 0, err
	}

	policy := domainbilling.Policy{
		Modo:            cfg.ModoMora,
		PorcentajeMora:  cfg.PorcentajeMora,
		MultaPorFactura: cfg.MultaPorFactura,
	}
	if policy.Modo == "" {
		policy.Modo = entity.ModoMoraSumaAcumulada
	}
	if in.ModoMora != "" {
		policy.Modo = in.ModoMora
	}
	if in.MultaPorFactura.IsPositive() {
		policy.MultaPorFactura = in.MultaPorFactura
	}

	dias := cfg.DiasVencimiento
	if in.DiasVencimiento > 0 {
		dias = in.DiasVencimiento
	}
	if dias <= 0 {
		dias = defaultDiasVencimiento
	}
	return policy, dias, nil
}

// generateForAccount ejecuta el pipeline completo para una matrícula.
// El barrido de facturas vencidas y la inserción de la nueva corren dentro
// de una transacción, de modo que otra corrida concurrente sobre la misma
// matrícula no pueda contar la deuda dos veces.
func (uc *GenerateInvoicesUseCase) generateForAccount(
	ctx context.Context,
	codMatricula, periodo string,
	valorBase decimal.Decimal,
	fechaEmision, fechaVencimiento time.Time,
	policy domainbilling.Policy,
) (*dto.InvoiceCreated, error) {
	// Guardián de periodo: a lo sumo una factura por (matrícula, periodo).
	exists, err := uc.invoiceRepo.ExistsForPeriod(ctx, codMatricula, periodo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrInvoiceExistsForPeriod
	}

	var created dto.InvoiceCreated
	err = uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		_ repository.PaymentRepository,
	) error {
		// Facturas con deuda: estado {Pendiente, Vencida, en_mora} y
		// vencimiento anterior a la fecha de emisión. Incluir en_mora hace
		// la corrida re-ejecutable: una corrida interrumpida después del
		// barrido no pierde el monto en el siguiente intento.
		overdue, err := invoiceRepo.ListOverdueByAccount(ctx, codMatricula, fechaEmision)
		if err != nil {
			return err
		}

		arrears := domainbilling.Compute(policy, overdue)

		// Marcar en mora antes de insertar la nueva (ver nota de re-ejecución).
		for _, f := range overdue {
			if f.Estado == entity.FacturaEnMora {
				continue
			}
			if err := invoiceRepo.UpdateEstado(ctx, f.ID, entity.FacturaEnMora); err != nil {
				return err
			}
		}

		invoice := &entity.Invoice{
			ID:                 uuid.New().String(),
			CodMatricula:       codMatricula,
			PeriodoFacturacion: periodo,
			FechaCreacion:      fechaEmision,
			FechaVencimiento:   fechaVencimiento,
			Valor:              arrears.Total(valorBase),
			Estado:             entity.FacturaPendiente,
			Observaciones:      arrears.Observaciones(),
			URL:                "facturas/" + codMatricula + "_" + periodo + ".pdf",
			CreatedAt:          fechaEmision,
			UpdatedAt:          fechaEmision,
		}
		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}

		created = dto.InvoiceCreated{
			Matricula:      codMatricula,
			FacturaID:      invoice.ID,
			ValorBase:      valorBase,
			ValorMora:      arrears.Mora,
			ValorMultas:    arrears.Multas,
			ValorTotal:     invoice.Valor,
			FacturasEnMora: len(overdue),
		}
		for _, it := range arrears.Items {
			created.DetalleMora = append(created.DetalleMora, dto.ArrearsLineItem{
				Periodo: it.Periodo,
				Valor:   it.Valor,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
