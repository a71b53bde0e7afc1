package dto

// RegisterRequest entrada para registro: teléfono, password y rol.
type RegisterRequest struct {
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin user customer"`
}

// RegisterResponse salida del registro con el uid asignado.
type RegisterResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

// LoginRequest entrada para login por teléfono.
type LoginRequest struct {
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse salida con token JWT de sesión.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UID     string `json:"uid"`
	Role    string `json:"role"`
}

// RequestOTPRequest solicita un código para el teléfono dado.
type RequestOTPRequest struct {
	Phone string `json:"phone" form:"phone" validate:"required"`
}

// RequestOTPResponse confirma la emisión. OTP solo viene cuando la app está
// configurada para devolver el código (no hay canal de envío).
type RequestOTPResponse struct {
	Message   string `json:"message"`
	OTP       string `json:"otp,omitempty"`
	ExpiresAt string `json:"expires_at"`
}

// VerifyOTPRequest verifica un código emitido para el teléfono.
type VerifyOTPRequest struct {
	Phone string `json:"phone" form:"phone" validate:"required"`
	Code  string `json:"code" form:"code" validate:"required,len=6"`
}
