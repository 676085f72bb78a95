package dto

// CreateAccountRequest body para POST /api/matriculas.
type CreateAccountRequest struct {
	CodMatricula  string `json:"cod_matricula"`
	PredioID      string `json:"id_predio"`
	Observaciones string `json:"observaciones,omitempty"`
}

// AccountResponse matrícula en respuestas.
type AccountResponse struct {
	CodMatricula  string `json:"cod_matricula"`
	PredioID      string `json:"id_predio"`
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones,omitempty"`
	FechaCreacion string `json:"fecha_creacion"`
}
