package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// CustomerRef acepta id numérico, id externo (CU-... o sin el prefijo) o nombre exacto.
type CreateSaleRequest struct {
	CustomerRef  string          `json:"customer_id" form:"customer_id" validate:"required"`
	BagSize      string          `json:"bag_size" form:"bag_size" validate:"required,oneof=1kg 5kg 10kg"`
	Units        int             `json:"units" form:"units" validate:"required,gt=0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" form:"price_per_unit"`
	PaidAmount   decimal.Decimal `json:"paid_amount" form:"paid_amount"`
	PaymentType  string          `json:"payment_type" form:"payment_type" validate:"omitempty,oneof=cash online"`
	InvoiceImage string          `json:"invoice_image" form:"invoice_image" validate:"omitempty,max=300"`
}

// UpdateSaleRequest entrada para editar una venta. Punteros nil = sin cambio.
type UpdateSaleRequest struct {
	BagSize    string           `json:"bag_size" form:"bag_size"`
	Units      *int             `json:"units" form:"units"`
	PaidAmount *decimal.Decimal `json:"paid_amount" form:"paid_amount"`
}

// SaleResponse salida de una venta. Outstanding puede ser negativo (sobrepago).
type SaleResponse struct {
	ID           int64           `json:"id"`
	SaleID       string          `json:"sale_id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	BagSize      string          `json:"bag_size"`
	Units        int             `json:"units"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	InvoiceImage string          `json:"invoice_image,omitempty"`
	Date         time.Time       `json:"date"`
}
