package entity

import "time"

// Roles que devuelve el RPC get_user_role de la plataforma.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema. El rol lo administra la plataforma
// (columna gestionada por el servicio de identidad) y este sistema solo lo
// lee vía el RPC get_user_role; nunca lo escribe.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
