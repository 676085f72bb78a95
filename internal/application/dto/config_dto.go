package dto

import "github.com/shopspring/decimal"

// BillingConfigRequest body para crear/actualizar la configuración de facturación.
type BillingConfigRequest struct {
	NombreAcueducto string          `json:"nombre_acueducto"`
	NIT             string          `json:"nit,omitempty"`
	Direccion       string          `json:"direccion,omitempty"`
	Telefono        string          `json:"telefono,omitempty"`
	Email           string          `json:"email,omitempty"`
	TarifaBase      decimal.Decimal `json:"tarifa_base"`
	ModoMora        string          `json:"modo_mora,omitempty"` // suma_acumulada | porcentaje_deuda
	PorcentajeMora  decimal.Decimal `json:"porcentaje_mora,omitempty"`
	MultaPorFactura decimal.Decimal `json:"multa_por_factura,omitempty"`
	DiasVencimiento int             `json:"dias_vencimiento,omitempty"`
}

// BillingConfigResponse configuración activa en respuestas.
type BillingConfigResponse struct {
	ID              string          `json:"id_config"`
	NombreAcueducto string          `json:"nombre_acueducto"`
	NIT             string          `json:"nit,omitempty"`
	Direccion       string          `json:"direccion,omitempty"`
	Telefono        string          `json:"telefono,omitempty"`
	Email           string          `json:"email,omitempty"`
	TarifaBase      decimal.Decimal `json:"tarifa_base"`
	ModoMora        string          `json:"modo_mora"`
	PorcentajeMora  decimal.Decimal `json:"porcentaje_mora"`
	MultaPorFactura decimal.Decimal `json:"multa_por_factura"`
	DiasVencimiento int             `json:"dias_vencimiento"`
	Activo          bool            `json:"activo"`
}
