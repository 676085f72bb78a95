package dto

import "time"

// RegisterRequest entrada para registro de un usuario del sistema.
type RegisterRequest struct {
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // admin | operario | consulta
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Cedula    string    `json:"cedula"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
