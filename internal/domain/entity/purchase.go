package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tamaños de bolsa que maneja la operación.
const (
	BagSize1kg  = "1kg"
	BagSize5kg  = "5kg"
	BagSize10kg = "10kg"
)

// Purchase representa una compra a proveedor.
// Invariante: TotalAmount == Units * PricePerUnit al momento de crear.
type Purchase struct {
	ID           int64
	PurchaseID   string // id externo P-MMW-rand4
	SupplierID   string // referencia al id EXTERNO del proveedor (no al numérico)
	BagSize      string
	Units        int
	PricePerUnit decimal.Decimal
	TotalAmount  decimal.Decimal
	InvoiceImage string // ruta o URL de la imagen de factura (almacenamiento externo)
	Date         time.Time
}
