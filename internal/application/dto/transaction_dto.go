package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar un movimiento manual (gasto u otro).
type CreateTransactionRequest struct {
	Type        string          `json:"type" form:"type" validate:"required,oneof=cash online expense"`
	Amount      decimal.Decimal `json:"amount" form:"amount"`
	RelatedType string          `json:"related_type" form:"related_type" validate:"omitempty,oneof=sale purchase other"`
	RelatedID   string          `json:"related_id" form:"related_id"`
	Note        string          `json:"note" form:"note" validate:"omitempty,max=300"`
}

// TransactionResponse salida de un movimiento.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	RelatedType string          `json:"related_type,omitempty"`
	RelatedID   string          `json:"related_id,omitempty"`
	Note        string          `json:"note,omitempty"`
	Date        time.Time       `json:"date"`
}
