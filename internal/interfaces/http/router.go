package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acueducto-api/internal/application/auth"
	"github.com/jhoicas/acueducto-api/internal/application/billing"
	"github.com/jhoicas/acueducto-api/internal/application/usecase"
	"github.com/jhoicas/acueducto-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	GenerateUC    *billing.GenerateInvoicesUseCase
	SweepUC       *billing.OverdueSweepUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PaymentRegUC  *billing.RegisterPaymentUseCase
	PaymentUC     *billing.PaymentUseCase
	PDFUC         *billing.PDFUseCase
	AccountUC     *usecase.AccountUseCase
	PropertyUC    *usecase.PropertyUseCase
	OwnerUC       *usecase.OwnerUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	MaintTypeUC   *usecase.MaintenanceTypeUseCase
	SolicitudUC   *usecase.MaintenanceRequestUseCase
	ReporteUC     *usecase.MaintenanceReportUseCase
	ConfigUC      *usecase.BillingConfigUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Los roles de escritura; consulta solo lee.
	write := RequireRole(entity.RoleAdmin, entity.RoleOperario)
	admin := RequireRole(entity.RoleAdmin)

	// Facturas (protegido). Las corridas de facturación y el barrido de mora
	// son operaciones de escritura.
	invoices := protected.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.GenerateUC, deps.SweepUC, deps.InvoiceUC, deps.PaymentRegUC, deps.PDFUC)
	invoices.Post("/generar-masivo", write, invoiceHandler.GenerateMassive)
	invoices.Post("/generar", write, invoiceHandler.GenerateOne)
	invoices.Post("/actualizar-mora", write, invoiceHandler.SweepOverdue)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/matricula/:cod", invoiceHandler.ListByAccount)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id/estado", write, invoiceHandler.UpdateEstado)
	invoices.Post("/:id/pagos", write, invoiceHandler.RegisterPayment)
	invoices.Post("/:id/pdf", write, invoiceHandler.GeneratePDF)
	invoices.Put("/:id/pdf", write, invoiceHandler.AttachPDF)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Pagos (protegido, solo consulta)
	payments := protected.Group("/pagos")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Get("/factura/:id", paymentHandler.ListByInvoice)

	// Matrículas (protegido)
	accounts := protected.Group("/matriculas")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Post("/", write, accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/propietario/:cc", accountHandler.ListByOwner)
	accounts.Get("/:cod", accountHandler.GetByCode)
	accounts.Put("/:cod/estado", write, accountHandler.UpdateEstado)

	// Predios (protegido)
	properties := protected.Group("/predios")
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	properties.Post("/", write, propertyHandler.Create)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Put("/:id", write, propertyHandler.Update)
	properties.Delete("/:id", admin, propertyHandler.Delete)

	// Propietarios (protegido)
	owners := protected.Group("/propietarios")
	ownerHandler := NewOwnerHandler(deps.OwnerUC)
	owners.Post("/", write, ownerHandler.Create)
	owners.Get("/", ownerHandler.List)
	owners.Get("/:cc", ownerHandler.GetByCC)
	owners.Put("/:cc", write, ownerHandler.Update)
	owners.Delete("/:cc", admin, ownerHandler.Delete)

	// Mantenimientos (protegido)
	maintenances := protected.Group("/mantenimientos")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenances.Post("/", write, maintenanceHandler.Create)
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Put("/:id", write, maintenanceHandler.Update)
	maintenances.Delete("/:id", admin, maintenanceHandler.Delete)

	// Catálogo de tipos de mantenimiento (protegido)
	tipos := protected.Group("/tipos-mantenimiento")
	typeHandler := NewMaintenanceTypeHandler(deps.MaintTypeUC)
	tipos.Get("/", typeHandler.List)
	tipos.Post("/", admin, typeHandler.Create)

	// Solicitudes de mantenimiento (protegido)
	solicitudes := protected.Group("/solicitudes")
	solicitudHandler := NewMaintenanceRequestHandler(deps.SolicitudUC)
	solicitudes.Post("/", write, solicitudHandler.Create)
	solicitudes.Get("/", solicitudHandler.List)
	solicitudes.Get("/buscar/:termino", solicitudHandler.Search)
	solicitudes.Get("/:codigo", solicitudHandler.GetByCodigo)
	solicitudes.Put("/:codigo/estado", write, solicitudHandler.UpdateEstado)

	// Reportes de mantenimiento (protegido)
	reportes := protected.Group("/reportes")
	reporteHandler := NewMaintenanceReportHandler(deps.ReporteUC)
	reportes.Post("/", write, reporteHandler.Create)
	reportes.Get("/", reporteHandler.List)
	reportes.Get("/buscar/:termino", reporteHandler.Search)
	reportes.Get("/:id", reporteHandler.GetByID)

	// Configuración de facturación (solo admin)
	config := protected.Group("/configuracion")
	configHandler := NewBillingConfigHandler(deps.ConfigUC)
	config.Get("/", configHandler.GetActive)
	config.Post("/", admin, configHandler.Create)
	config.Put("/", admin, configHandler.Update)
}
