package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar una compra.
// SupplierRef acepta id numérico, id externo (SU-... o con prefijo de UI SUP-...) o nombre exacto.
type CreatePurchaseRequest struct {
	SupplierRef  string          `json:"supplier_id" form:"supplier_id" validate:"required"`
	BagSize      string          `json:"bag_size" form:"bag_size" validate:"required,oneof=1kg 5kg 10kg"`
	Units        int             `json:"units" form:"units" validate:"required,gt=0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" form:"price_per_unit"`
	InvoiceImage string          `json:"invoice_image" form:"invoice_image" validate:"omitempty,max=300"`
}

// UpdatePurchaseRequest entrada para editar una compra. Punteros nil = sin cambio.
type UpdatePurchaseRequest struct {
	BagSize      string           `json:"bag_size" form:"bag_size"`
	Units        *int             `json:"units" form:"units"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit" form:"price_per_unit"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID           int64           `json:"id"`
	PurchaseID   string          `json:"purchase_id"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	BagSize      string          `json:"bag_size"`
	Units        int             `json:"units"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	InvoiceImage string          `json:"invoice_image,omitempty"`
	Date         time.Time       `json:"date"`
}
