package dto

import "github.com/shopspring/decimal"

// GenerateBatchRequest body para POST /api/facturas/generar-masivo.
// Los campos de política de mora son opcionales; si van vacíos se toman de
// la configuración de facturación activa.
type GenerateBatchRequest struct {
	PeriodoFacturacion string          `json:"periodo_facturacion"`
	ValorBase          decimal.Decimal `json:"valor_base"`
	DiasVencimiento    int             `json:"dias_vencimiento,omitempty"` // default 15
	ModoMora           string          `json:"modo_mora,omitempty"`
	MultaPorFactura    decimal.Decimal `json:"multa_por_factura,omitempty"`
}

// GenerateOneRequest body para POST /api/facturas/generar (una sola matrícula).
type GenerateOneRequest struct {
	CodMatricula string `json:"cod_matricula"`
	GenerateBatchRequest
}

// InvoiceCreated detalle de una factura generada con éxito en la corrida.
type InvoiceCreated struct {
	Matricula       string            `json:"matricula"`
	FacturaID       string            `json:"id_factura"`
	ValorBase       decimal.Decimal   `json:"valor_base"`
	ValorMora       decimal.Decimal   `json:"valor_mora"`
	ValorMultas     decimal.Decimal   `json:"valor_multas"`
	ValorTotal      decimal.Decimal   `json:"valor_total"`
	FacturasEnMora  int               `json:"facturas_en_mora"`
	DetalleMora     []ArrearsLineItem `json:"detalle_mora,omitempty"`
}

// ArrearsLineItem una factura vencida dentro del desglose de mora.
type ArrearsLineItem struct {
	Periodo string          `json:"periodo"`
	Valor   decimal.Decimal `json:"valor"`
}

// InvoiceFailed detalle de una matrícula que no pudo facturarse. El error es
// dato de la respuesta, nunca aborta la corrida.
type InvoiceFailed struct {
	Matricula string `json:"matricula"`
	Error     string `json:"error"`
}

// BatchResult resumen de una corrida de facturación masiva. No se persiste.
type BatchResult struct {
	Message         string           `json:"message"`
	TotalMatriculas int              `json:"total_matriculas"`
	FacturasCreadas int              `json:"facturas_creadas"`
	Errores         int              `json:"errores"`
	Detalle         BatchDetail      `json:"detalle"`
}

// BatchDetail listas de éxitos y fallos por matrícula.
type BatchDetail struct {
	Exitosas []InvoiceCreated `json:"exitosas"`
	Fallidas []InvoiceFailed  `json:"fallidas"`
}

// SweepResult resultado de POST /api/facturas/actualizar-mora.
type SweepResult struct {
	Message              string   `json:"message"`
	FacturasActualizadas int      `json:"facturas_actualizadas"`
	IDs                  []string `json:"ids,omitempty"`
}

// InvoiceResponse factura en respuestas de consulta.
type InvoiceResponse struct {
	ID                 string            `json:"id"`
	CodMatricula       string            `json:"cod_matricula"`
	PeriodoFacturacion string            `json:"periodo_facturacion"`
	FechaCreacion      string            `json:"fecha_creacion"`
	FechaVencimiento   string            `json:"fecha_vencimiento"`
	Valor              decimal.Decimal   `json:"valor"`
	Estado             string            `json:"estado"`
	Observaciones      string            `json:"observaciones,omitempty"`
	URL                string            `json:"url,omitempty"`
	Pagos              []PaymentResponse `json:"pagos,omitempty"`
}

// UpdateEstadoRequest body para PUT /api/facturas/:id/estado.
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// RegisterPaymentRequest body para POST /api/facturas/:id/pagos.
type RegisterPaymentRequest struct {
	FechaPago  string          `json:"fecha_pago,omitempty"` // "2006-01-02"; vacío = hoy
	MetodoPago string          `json:"metodo_pago"`
	Valor      decimal.Decimal `json:"valor"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID         string          `json:"id"`
	FacturaID  string          `json:"id_factura"`
	FechaPago  string          `json:"fecha_pago"`
	MetodoPago string          `json:"metodo_pago"`
	Valor      decimal.Decimal `json:"valor"`
}

// RegisterPaymentResponse confirma el pago e informa si la factura quedó pagada.
type RegisterPaymentResponse struct {
	Message     string          `json:"message"`
	TotalPagado decimal.Decimal `json:"total_pagado"`
	Estado      string          `json:"estado"`
}
