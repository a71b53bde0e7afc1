package repository

import "github.com/grocerybag/grocerybag-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create asigna el id numérico generado en user.ID (insert ... RETURNING id),
// de modo que el caller pueda derivar y reservar el uid dentro de la misma transacción.
type UserRepository interface {
	Create(user *entity.User) error
	UpdateUID(id int64, uid string) error
	GetByID(id int64) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
	// UpdateOTPMirror actualiza el espejo users.otp (no autoritativo).
	UpdateOTPMirror(id int64, code string) error
}
