package billing_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/domain"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
	"github.com/jhoicas/acueducto-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Sin concurrencia:
// los casos de uso procesan matrículas secuencialmente.

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
	failList bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) add(cod, estado string) {
	r.accounts[cod] = &entity.Account{CodMatricula: cod, PredioID: "p-" + cod, Estado: estado}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.accounts[a.CodMatricula] = a
	return nil
}

func (r *fakeAccountRepo) GetByCode(_ context.Context, cod string) (*entity.Account, error) {
	return r.accounts[cod], nil
}

func (r *fakeAccountRepo) ListActive(_ context.Context) ([]*entity.Account, error) {
	if r.failList {
		return nil, errors.New("db caída")
	}
	var out []*entity.Account
	for _, a := range r.accounts {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CodMatricula < out[j].CodMatricula })
	return out, nil
}

func (r *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) { return nil, nil }
func (r *fakeAccountRepo) ListByOwner(_ context.Context, _ string) ([]*entity.Account, error) {
	return nil, nil
}
func (r *fakeAccountRepo) HasActiveForProperty(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (r *fakeAccountRepo) UpdateEstado(_ context.Context, cod, estado string) error {
	if a, ok := r.accounts[cod]; ok {
		a.Estado = estado
	}
	return nil
}
func (r *fakeAccountRepo) Delete(_ context.Context, cod string) error {
	delete(r.accounts, cod)
	return nil
}

type fakeInvoiceRepo struct {
	invoices     map[string]*entity.Invoice
	createErrFor map[string]error // por matrícula, para simular fallos aislados
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:     map[string]*entity.Invoice{},
		createErrFor: map[string]error{},
	}
}

func (r *fakeInvoiceRepo) add(f *entity.Invoice) { r.invoices[f.ID] = f }

func (r *fakeInvoiceRepo) byAccount(cod string) []*entity.Invoice {
	var out []*entity.Invoice
	for _, f := range r.invoices {
		if f.CodMatricula == cod {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodoFacturacion < out[j].PeriodoFacturacion })
	return out
}

func (r *fakeInvoiceRepo) Create(_ context.Context, f *entity.Invoice) error {
	if err := r.createErrFor[f.CodMatricula]; err != nil {
		return err
	}
	for _, existing := range r.invoices {
		if existing.CodMatricula == f.CodMatricula && existing.PeriodoFacturacion == f.PeriodoFacturacion {
			return domain.ErrDuplicate
		}
	}
	cp := *f
	r.invoices[f.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, estado string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, f := range r.invoices {
		if estado == "" || f.Estado == estado {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByAccount(_ context.Context, cod string) ([]*entity.Invoice, error) {
	return r.byAccount(cod), nil
}

func (r *fakeInvoiceRepo) ExistsForPeriod(_ context.Context, cod, periodo string) (bool, error) {
	for _, f := range r.invoices {
		if f.CodMatricula == cod && f.PeriodoFacturacion == periodo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvoiceRepo) ListOverdueByAccount(_ context.Context, cod string, ref time.Time) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, f := range r.byAccount(cod) {
		if f.OverdueAt(ref) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListOverdue(_ context.Context, ref time.Time) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, f := range r.invoices {
		if f.Estado != entity.FacturaEnMora && f.OverdueAt(ref) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateEstado(_ context.Context, id, estado string) error {
	f, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Estado = estado
	return nil
}

func (r *fakeInvoiceRepo) AttachPDF(_ context.Context, id, nombre, tipo string, doc []byte) error {
	f, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.PDFNombre, f.PDFTipo, f.PDFDocumento = nombre, tipo, doc
	return nil
}

func (r *fakeInvoiceRepo) GetPDF(_ context.Context, id string) (string, string, []byte, error) {
	f, ok := r.invoices[id]
	if !ok {
		return "", "", nil, domain.ErrNotFound
	}
	return f.PDFNombre, f.PDFTipo, f.PDFDocumento, nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) ListByInvoice(_ context.Context, facturaID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.FacturaID == facturaID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(_ context.Context) ([]*entity.Payment, error) {
	return r.payments, nil
}

type fakeConfigRepo struct {
	cfg     *entity.BillingConfig
	failGet bool
}

func (r *fakeConfigRepo) GetActive(_ context.Context) (*entity.BillingConfig, error) {
	if r.failGet {
		return nil, errors.New("configuración inaccesible")
	}
	if r.cfg == nil {
		return nil, domain.ErrNoBillingConfig
	}
	return r.cfg, nil
}

func (r *fakeConfigRepo) Create(_ context.Context, cfg *entity.BillingConfig) error {
	r.cfg = cfg
	return nil
}

func (r *fakeConfigRepo) Update(_ context.Context, cfg *entity.BillingConfig) error {
	r.cfg = cfg
	return nil
}

// fakeTxRunner pasa los mismos repos en memoria; no hay transacción real.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	paymentRepo *fakePaymentRepo
}

var _ appbilling.BillingTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(r.invoiceRepo, r.paymentRepo)
}

func defaultConfig() *entity.BillingConfig {
	return &entity.BillingConfig{
		ID:              "cfg-1",
		NombreAcueducto: "Acueducto Veredal El Roble",
		TarifaBase:      decimal.NewFromInt(5000),
		ModoMora:        entity.ModoMoraSumaAcumulada,
		DiasVencimiento: 15,
		Activo:          true,
	}
}
