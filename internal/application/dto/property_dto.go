package dto

// CreatePropertyRequest body para POST /api/predios.
type CreatePropertyRequest struct {
	PropietarioID string `json:"cc_propietario"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono,omitempty"`
	Correo        string `json:"correo,omitempty"`
	Estrato       int    `json:"estrato,omitempty"`
}

// PropertyResponse predio en respuestas.
type PropertyResponse struct {
	ID            string `json:"id_predio"`
	PropietarioID string `json:"cc_propietario"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono,omitempty"`
	Correo        string `json:"correo,omitempty"`
	Estrato       int    `json:"estrato,omitempty"`
}
