package ledger

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/extid"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// PurchaseUseCase construye los asientos de compra: resuelve el proveedor,
// calcula el total y genera el id externo con reintento acotado ante colisión.
type PurchaseUseCase struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(purchaseRepo repository.PurchaseRepository, supplierRepo repository.SupplierRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo}
}

// Create registra una compra. TotalAmount = Units * PricePerUnit siempre.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplier, err := resolveSupplier(uc.supplierRepo, in.SupplierRef)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if in.Units <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.PricePerUnit.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	now := time.Now()
	total := in.PricePerUnit.Mul(decimal.NewFromInt(int64(in.Units)))

	supplierExt := supplier.SupplierID
	if supplierExt == "" {
		supplierExt = strconv.FormatInt(supplier.ID, 10)
	}
	purchase := &entity.Purchase{
		SupplierID:   supplierExt,
		BagSize:      in.BagSize,
		Units:        in.Units,
		PricePerUnit: in.PricePerUnit,
		TotalAmount:  total,
		InvoiceImage: in.InvoiceImage,
		Date:         now,
	}

	// El índice único del store es el respaldo contra colisiones del generador:
	// exactamente un reintento con otro sufijo antes de rendirse.
	purchase.PurchaseID = extid.ForEntry(extid.PrefixPurchase, now, extid.EntryRand4())
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		purchase.PurchaseID = extid.ForEntry(extid.PrefixPurchase, now, extid.EntryRand4())
		if err := uc.purchaseRepo.Create(purchase); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, domain.ErrDuplicateExternalID
			}
			return nil, err
		}
	}

	return toPurchaseResponse(purchase, supplier.Name), nil
}

// Update edita una compra y recalcula TotalAmount = Units * PricePerUnit.
func (uc *PurchaseUseCase) Update(ctx context.Context, ref string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	purchase, err := uc.findByRef(ref)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}

	if in.BagSize != "" {
		purchase.BagSize = in.BagSize
	}
	if in.Units != nil {
		if *in.Units <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		purchase.Units = *in.Units
	}
	if in.PricePerUnit != nil {
		if in.PricePerUnit.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		purchase.PricePerUnit = *in.PricePerUnit
	}
	purchase.TotalAmount = purchase.PricePerUnit.Mul(decimal.NewFromInt(int64(purchase.Units)))

	if err := uc.purchaseRepo.Update(purchase); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, ""), nil
}

// List devuelve las compras más recientes primero (máximo 100).
func (uc *PurchaseUseCase) List(ctx context.Context) ([]*dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.List(100)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		name := ""
		if s, _ := uc.supplierRepo.GetByExternalID(p.SupplierID); s != nil {
			name = s.Name
		}
		out = append(out, toPurchaseResponse(p, name))
	}
	return out, nil
}

func (uc *PurchaseUseCase) findByRef(ref string) (*entity.Purchase, error) {
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		return uc.purchaseRepo.GetByID(id)
	}
	return uc.purchaseRepo.GetByExternalID(ref)
}

func toPurchaseResponse(p *entity.Purchase, supplierName string) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		PurchaseID:   p.PurchaseID,
		SupplierID:   p.SupplierID,
		SupplierName: supplierName,
		BagSize:      p.BagSize,
		Units:        p.Units,
		PricePerUnit: p.PricePerUnit,
		TotalAmount:  p.TotalAmount,
		InvoiceImage: p.InvoiceImage,
		Date:         p.Date,
	}
}
