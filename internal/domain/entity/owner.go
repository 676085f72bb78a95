package entity

import "time"

// Owner es el propietario de uno o más predios.
type Owner struct {
	CC            string // cédula de ciudadanía, clave natural
	Nombre        string
	Apellido      string
	Telefono      string
	Correo        string
	Direccion     string
	FechaRegistro time.Time
}
