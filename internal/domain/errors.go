package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrNoActiveAccounts aborta la facturación masiva cuando no hay matrículas activas.
	ErrNoActiveAccounts = errors.New("no hay matrículas activas para facturar")
	// ErrInvoiceExistsForPeriod: ya existe factura para la matrícula en ese periodo.
	ErrInvoiceExistsForPeriod = errors.New("ya existe factura para este periodo")
	// ErrActiveRegistrationExists: el predio ya tiene una matrícula activa.
	ErrActiveRegistrationExists = errors.New("el predio ya tiene una matrícula activa")
	// ErrNoBillingConfig: no hay configuración de facturación activa.
	ErrNoBillingConfig = errors.New("no hay configuración de facturación activa")
)
