package ledger

import (
	"context"
	"time"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// UpdatesUseCase arma el feed de cambios recientes para sincronización de la UI:
// todas las entidades creadas después de `since`, en orden ascendente.
type UpdatesUseCase struct {
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
}

// NewUpdatesUseCase construye el caso de uso.
func NewUpdatesUseCase(
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) *UpdatesUseCase {
	return &UpdatesUseCase{
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
	}
}

// Recent devuelve las entidades creadas después de since.
func (uc *UpdatesUseCase) Recent(ctx context.Context, since time.Time) (*dto.RecentUpdatesResponse, error) {
	out := &dto.RecentUpdatesResponse{
		Since:     since.Format(time.RFC3339),
		Suppliers: []dto.SupplierResponse{},
		Customers: []dto.CustomerResponse{},
		Purchases: []dto.PurchaseResponse{},
		Sales:     []dto.SaleResponse{},
	}

	suppliers, err := uc.supplierRepo.CreatedAfter(since)
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		out.Suppliers = append(out.Suppliers, *toSupplierResponse(s))
	}

	customers, err := uc.customerRepo.CreatedAfter(since)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, *toCustomerResponse(c))
	}

	purchases, err := uc.purchaseRepo.CreatedAfter(since)
	if err != nil {
		return nil, err
	}
	for _, p := range purchases {
		out.Purchases = append(out.Purchases, *toPurchaseResponse(p, ""))
	}

	sales, err := uc.saleRepo.CreatedAfter(since)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, *toSaleResponse(s, ""))
	}

	return out, nil
}
