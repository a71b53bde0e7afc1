package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" form:"address" validate:"omitempty,max=250"`
}

// UpdateSupplierRequest entrada para editar un proveedor. Campo vacío = sin cambio.
type UpdateSupplierRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID         int64     `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}
