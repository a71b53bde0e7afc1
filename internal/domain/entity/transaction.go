package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de caja.
const (
	TxTypeCash    = "cash"
	TxTypeOnline  = "online"
	TxTypeExpense = "expense"
)

// Relación de una transacción con un documento.
const (
	RelatedSale     = "sale"
	RelatedPurchase = "purchase"
	RelatedOther    = "other"
)

// Transaction representa un movimiento de caja/online. Se crea automáticamente
// cuando una venta registra PaidAmount > 0, con RelatedID apuntando al id externo de la venta.
type Transaction struct {
	ID          int64
	Type        string // cash, online, expense
	Amount      decimal.Decimal
	RelatedType string // sale, purchase, other ("" si no aplica)
	RelatedID   string // id externo del documento relacionado (S-.../P-...)
	Note        string
	Date        time.Time
}
