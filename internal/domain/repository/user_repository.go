package repository

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// UserRepository puerto de persistencia e identidad para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// GetRole invoca el procedimiento get_user_role(user_id) de la plataforma
	// y devuelve "admin" o "user". El rol nunca se escribe desde este sistema.
	GetRole(userID string) (string, error)
	UpdateLastLogin(id string, at time.Time) error
}
