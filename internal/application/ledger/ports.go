package ledger

import (
	"context"

	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción del store.
// RunSale agrupa venta + transacción de pago + alerta en una sola unidad atómica,
// para que un lector concurrente nunca vea una venta sin su transacción ligada.
// RunCustomer agrupa insert del cliente + reserva del uid derivado del id numérico.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
		alertRepo repository.AlertRepository,
	) error) error

	RunCustomer(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
	) error) error
}
