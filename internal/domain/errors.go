package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrSupplierNotFound    = errors.New("proveedor no encontrado")
	ErrCustomerNotFound    = errors.New("cliente no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrPhoneAlreadyExists  = errors.New("el teléfono ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("cantidad de unidades inválida")
	ErrInvalidPrice        = errors.New("precio unitario inválido")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrDuplicateExternalID = errors.New("colisión de id externo") // retry-able: reintentar con otro sufijo aleatorio
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrOtpInvalidOrExpired = errors.New("código OTP inválido o expirado")
)
