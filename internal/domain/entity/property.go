package entity

import "time"

// Property representa un predio (inmueble) dentro del área del acueducto.
type Property struct {
	ID            string
	PropietarioID string
	Direccion     string
	Telefono      string
	Correo        string
	Estrato       int
	FechaRegistro time.Time
}
