package dto

// CreateOwnerRequest body para POST /api/propietarios.
type CreateOwnerRequest struct {
	CC        string `json:"cc"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono,omitempty"`
	Correo    string `json:"correo,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// OwnerResponse propietario en respuestas.
type OwnerResponse struct {
	CC        string `json:"cc"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono,omitempty"`
	Correo    string `json:"correo,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}
