package repository

import "github.com/grocerybag/grocerybag-api/internal/domain/entity"

// OTPRepository define el puerto de persistencia para OTP.
// La tabla otps es la fuente de verdad de la semántica one-time.
type OTPRepository interface {
	Create(otp *entity.OTP) error
	// GetByUserAndCode devuelve la fila más reciente para ese usuario y código (usada o no).
	GetByUserAndCode(userID int64, code string) (*entity.OTP, error)
	MarkUsed(id int64) error
}
