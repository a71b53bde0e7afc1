package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/extid"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// SaleUseCase construye los asientos de venta: total, saldo pendiente y la
// transacción de pago ligada, todo en una sola unidad atómica.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, customerRepo: customerRepo}
}

// Create registra una venta. Outstanding = TotalAmount - PaidAmount y puede
// quedar negativo (sobrepago): se devuelve tal cual y se deja una alerta,
// nunca se recorta. Si PaidAmount > 0 se crea exactamente una Transaction
// ligada dentro de la misma transacción del store.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	customer, err := resolveCustomer(uc.customerRepo, in.CustomerRef)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if in.Units <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.PricePerUnit.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	if in.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = entity.TxTypeCash
	}

	now := time.Now()
	total := in.PricePerUnit.Mul(decimal.NewFromInt(int64(in.Units)))
	outstanding := total.Sub(in.PaidAmount)

	customerExt := customer.CustomerID
	if customerExt == "" {
		customerExt = strconv.FormatInt(customer.ID, 10)
	}
	sale := &entity.Sale{
		CustomerID:   customerExt,
		BagSize:      in.BagSize,
		Units:        in.Units,
		TotalAmount:  total,
		PaidAmount:   in.PaidAmount,
		Outstanding:  outstanding,
		InvoiceImage: in.InvoiceImage,
		Date:         now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
		alertRepo repository.AlertRepository,
	) error {
		// Exactamente un reintento con otro sufijo ante colisión del generador.
		sale.SaleID = extid.ForEntry(extid.PrefixSale, now, extid.EntryRand4())
		if err := saleRepo.Create(sale); err != nil {
			if !errors.Is(err, domain.ErrDuplicate) {
				return err
			}
			sale.SaleID = extid.ForEntry(extid.PrefixSale, now, extid.EntryRand4())
			if err := saleRepo.Create(sale); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return domain.ErrDuplicateExternalID
				}
				return err
			}
		}

		if sale.PaidAmount.IsPositive() {
			t := &entity.Transaction{
				Type:        paymentType,
				Amount:      sale.PaidAmount,
				RelatedType: entity.RelatedSale,
				RelatedID:   sale.SaleID,
				Note:        fmt.Sprintf("Pago de venta del cliente %s", customerExt),
				Date:        now,
			}
			if err := txRepo.Create(t); err != nil {
				return err
			}
		}

		if sale.Outstanding.IsNegative() {
			alert := &entity.Alert{
				Type:        entity.AlertOverpayment,
				Message:     fmt.Sprintf("Venta %s con sobrepago: saldo %s", sale.SaleID, sale.Outstanding.StringFixed(2)),
				RelatedType: entity.RelatedSale,
				RelatedID:   sale.SaleID,
				CreatedAt:   now,
			}
			if err := alertRepo.Create(alert); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, customer.Name), nil
}

// Update edita una venta. El total se recalcula con el precio unitario
// implícito del total anterior (total previo / unidades previas); si las
// unidades previas eran cero, el precio implícito es el total previo completo
// para no dividir por cero.
func (uc *SaleUseCase) Update(ctx context.Context, ref string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.findByRef(ref)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	impliedPrice := sale.TotalAmount
	if sale.Units > 0 {
		impliedPrice = sale.TotalAmount.Div(decimal.NewFromInt(int64(sale.Units)))
	}

	if in.BagSize != "" {
		sale.BagSize = in.BagSize
	}
	if in.Units != nil {
		if *in.Units <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		sale.Units = *in.Units
		sale.TotalAmount = impliedPrice.Mul(decimal.NewFromInt(int64(sale.Units)))
	}
	if in.PaidAmount != nil {
		if in.PaidAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sale.PaidAmount = *in.PaidAmount
	}
	sale.Outstanding = sale.TotalAmount.Sub(sale.PaidAmount)

	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale, ""), nil
}

// Get devuelve una venta por id numérico o externo.
func (uc *SaleUseCase) Get(ctx context.Context, ref string) (*dto.SaleResponse, error) {
	sale, err := uc.findByRef(ref)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	name := ""
	if c, _ := uc.customerRepo.GetByExternalID(sale.CustomerID); c != nil {
		name = c.Name
	}
	return toSaleResponse(sale, name), nil
}

// List devuelve las ventas más recientes primero (máximo 100).
func (uc *SaleUseCase) List(ctx context.Context) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(100)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		name := ""
		if c, _ := uc.customerRepo.GetByExternalID(s.CustomerID); c != nil {
			name = c.Name
		}
		out = append(out, toSaleResponse(s, name))
	}
	return out, nil
}

func (uc *SaleUseCase) findByRef(ref string) (*entity.Sale, error) {
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		return uc.saleRepo.GetByID(id)
	}
	return uc.saleRepo.GetByExternalID(ref)
}

func toSaleResponse(s *entity.Sale, customerName string) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		SaleID:       s.SaleID,
		CustomerID:   s.CustomerID,
		CustomerName: customerName,
		BagSize:      s.BagSize,
		Units:        s.Units,
		TotalAmount:  s.TotalAmount,
		PaidAmount:   s.PaidAmount,
		Outstanding:  s.Outstanding,
		InvoiceImage: s.InvoiceImage,
		Date:         s.Date,
	}
}
