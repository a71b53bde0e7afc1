package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta a cliente.
// Invariantes: TotalAmount == Units * precio unitario al crear (el precio no se
// persiste; en ediciones se usa el precio implícito TotalAmount/Units previo);
// Outstanding == TotalAmount - PaidAmount siempre (puede ser negativo: sobrepago, no se recorta).
type Sale struct {
	ID           int64
	SaleID       string // id externo S-MMW-rand4
	CustomerID   string // referencia al id EXTERNO del cliente (no al numérico)
	BagSize      string
	Units        int
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	Outstanding  decimal.Decimal
	InvoiceImage string
	Date         time.Time
}
