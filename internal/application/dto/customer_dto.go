package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente (teléfono obligatorio y único).
type CreateCustomerRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Phone   string `json:"phone" form:"phone" validate:"required,max=20"`
	Address string `json:"address" form:"address" validate:"omitempty,max=250"`
}

// UpdateCustomerRequest entrada para editar un cliente. Campo vacío = sin cambio.
type UpdateCustomerRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID         int64     `json:"id"`
	CustomerID string    `json:"customer_id"`
	UID        string    `json:"uid"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}
