package entity

import "time"

// Roles válidos para User. El prefijo del uid externo siempre corresponde al rol.
const (
	RoleAdmin    = "admin"    // uid AD-xxxx
	RoleUser     = "user"     // uid US-xxxx
	RoleCustomer = "customer" // uid CU-xxxx
)

// User representa una cuenta del sistema (login por teléfono).
type User struct {
	ID           int64
	UID          string // id externo con prefijo de rol (AD-0001); se reserva en la misma transacción del insert
	Phone        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user, customer
	OTP          string // espejo del último código emitido; NO autoritativo (la tabla otps manda)
	CreatedAt    time.Time
}
