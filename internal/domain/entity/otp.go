package entity

import "time"

// OTP representa un código de un solo uso ligado a un usuario.
// Esta tabla es la fuente de verdad de la semántica one-time (Used + ExpiresAt);
// el espejo en users.otp es solo conveniencia.
type OTP struct {
	ID        int64
	UserID    int64
	Code      string // 6 dígitos
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Valid indica si el código puede consumirse en el instante now.
func (o *OTP) Valid(now time.Time) bool {
	return !o.Used && now.Before(o.ExpiresAt)
}
