package entity

import "time"

// Tipos de alerta conocidos.
const (
	AlertOverpayment = "overpayment" // venta con Outstanding negativo
	AlertOutstanding = "outstanding" // saldo pendiente alto
)

// Alert representa una alerta de reporte; no bloquea ninguna operación.
type Alert struct {
	ID          int64
	Type        string
	Message     string
	RelatedType string
	RelatedID   string // id externo del documento relacionado
	Resolved    bool
	CreatedAt   time.Time
}
