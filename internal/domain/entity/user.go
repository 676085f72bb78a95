package entity

import "time"

// Roles de los usuarios del sistema.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
	RoleConsulta = "consulta"
)

// User es un usuario del sistema (funcionario del acueducto), no un suscriptor.
type User struct {
	ID           string
	Cedula       string
	Nombre       string
	Apellido     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
