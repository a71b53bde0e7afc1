package ledger

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// SaleReceiptGenerator genera la representación gráfica (PDF) de una venta.
type SaleReceiptGenerator interface {
	GenerateSaleReceipt(
		ctx context.Context,
		sale *entity.Sale,
		customer *entity.Customer,
		payments []*entity.Transaction,
	) ([]byte, error)
}

// ReceiptUseCase arma el recibo PDF de una venta: datos del cliente,
// detalle de la venta y los pagos ligados.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	generator    SaleReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	generator SaleReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		txRepo:       txRepo,
		generator:    generator,
	}
}

// DownloadSaleReceipt genera el recibo de la venta referida por id numérico o externo.
func (uc *ReceiptUseCase) DownloadSaleReceipt(ctx context.Context, ref string) (pdfBytes []byte, filename string, err error) {
	var sale *entity.Sale
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		sale, err = uc.saleRepo.GetByID(id)
	} else {
		sale, err = uc.saleRepo.GetByExternalID(ref)
	}
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByExternalID(sale.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener cliente: %w", err)
	}
	if customer == nil {
		// Referencia histórica sin fila de cliente: el recibo sale sin contacto.
		customer = &entity.Customer{CustomerID: sale.CustomerID, Name: sale.CustomerID}
	}

	payments, err := uc.txRepo.ListByRelated(entity.RelatedSale, sale.SaleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pagos: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateSaleReceipt(ctx, sale, customer, payments)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", sale.SaleID)
	return pdfBytes, filename, nil
}
