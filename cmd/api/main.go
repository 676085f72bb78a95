package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/acueducto-api/internal/application/auth"
	"github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/acueducto-api/internal/infrastructure/pdf"
	"github.com/jhoicas/acueducto-api/internal/infrastructure/postgres"
	"github.com/jhoicas/acueducto-api/internal/observability/metrics"
	httpRouter "github.com/jhoicas/acueducto-api/internal/interfaces/http"
	"github.com/jhoicas/acueducto-api/pkg/config"
	"github.com/jhoicas/acueducto-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	metrics.Init()

	// Repositorios sobre el pool; los repos transaccionales los crea TxRunner.
	userRepo := postgres.NewUserRepository(pool)
	ownerRepo := postgres.NewOwnerRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	maintTypeRepo := postgres.NewMaintenanceTypeRepository(pool)
	solicitudRepo := postgres.NewMaintenanceRequestRepository(pool)
	reporteRepo := postgres.NewMaintenanceReportRepository(pool)
	configRepo := postgres.NewBillingConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso de facturación
	generateUC := billing.NewGenerateInvoicesUseCase(txRunner, accountRepo, invoiceRepo, configRepo)
	sweepUC := billing.NewOverdueSweepUseCase(invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, paymentRepo, accountRepo)
	paymentRegUC := billing.NewRegisterPaymentUseCase(txRunner, invoiceRepo, paymentRepo)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, accountRepo, propertyRepo, ownerRepo, configRepo, pdfGenerator)

	// Casos de uso de gestión
	accountUC := usecase.NewAccountUseCase(accountRepo, propertyRepo)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, ownerRepo)
	ownerUC := usecase.NewOwnerUseCase(ownerRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo)
	maintTypeUC := usecase.NewMaintenanceTypeUseCase(maintTypeRepo)
	solicitudUC := usecase.NewMaintenanceRequestUseCase(solicitudRepo, maintTypeRepo, accountRepo)
	reporteUC := usecase.NewMaintenanceReportUseCase(reporteRepo, solicitudRepo, txRunner)
	configUC := usecase.NewBillingConfigUseCase(configRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // PDFs adjuntos de hasta 10 MB + margen multipart
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Acueducto API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		GenerateUC:    generateUC,
		SweepUC:       sweepUC,
		InvoiceUC:     invoiceUC,
		PaymentRegUC:  paymentRegUC,
		PaymentUC:     paymentUC,
		PDFUC:         pdfUC,
		AccountUC:     accountUC,
		PropertyUC:    propertyUC,
		OwnerUC:       ownerUC,
		MaintenanceUC: maintenanceUC,
		MaintTypeUC:   maintTypeUC,
		SolicitudUC:   solicitudUC,
		ReporteUC:     reporteUC,
		ConfigUC:      configUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
