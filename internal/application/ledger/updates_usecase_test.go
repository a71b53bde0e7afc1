package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
)

func seedUpdatesRepos(t *testing.T) (*fakeSupplierRepo, *fakeCustomerRepo, *fakePurchaseRepo, *fakeSaleRepo) {
	t.Helper()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	supplierRepo := newFakeSupplierRepo()
	require.NoError(t, supplierRepo.Create(&entity.Supplier{
		SupplierID: "SU-260801-JuanGomez7733-0017", Name: "Juan Gomez", CreatedAt: base,
	}))
	require.NoError(t, supplierRepo.Create(&entity.Supplier{
		SupplierID: "SU-260815-AnaRuiz5120-0044", Name: "Ana Ruiz", CreatedAt: base.Add(14 * 24 * time.Hour),
	}))

	customerRepo := newFakeCustomerRepo()
	require.NoError(t, customerRepo.Create(&entity.Customer{
		CustomerID: "CU-260801-MariaLopez4821-0042", Name: "Maria Lopez",
		Phone: "3001112233", CreatedAt: base,
	}))

	purchaseRepo := newFakePurchaseRepo()
	require.NoError(t, purchaseRepo.Create(&entity.Purchase{
		PurchaseID: "P-081-1111", SupplierID: "SU-260801-JuanGomez7733-0017",
		BagSize: "5kg", Units: 10,
		PricePerUnit: decimal.NewFromInt(900), TotalAmount: decimal.NewFromInt(9000),
		Date: base.Add(24 * time.Hour),
	}))

	saleRepo := newFakeSaleRepo()
	require.NoError(t, saleRepo.Create(&entity.Sale{
		SaleID: "S-083-2222", CustomerID: "CU-260801-MariaLopez4821-0042",
		BagSize: "1kg", Units: 5,
		TotalAmount: decimal.NewFromInt(1500), PaidAmount: decimal.NewFromInt(1500),
		Outstanding: decimal.Zero,
		Date:        base.Add(15 * 24 * time.Hour),
	}))

	return supplierRepo, customerRepo, purchaseRepo, saleRepo
}

// since en el instante cero devuelve todo el histórico.
func TestUpdatesRecent_SinceCeroDevuelveTodo(t *testing.T) {
	supplierRepo, customerRepo, purchaseRepo, saleRepo := seedUpdatesRepos(t)
	uc := NewUpdatesUseCase(supplierRepo, customerRepo, purchaseRepo, saleRepo)

	out, err := uc.Recent(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Len(t, out.Suppliers, 2)
	assert.Len(t, out.Customers, 1)
	assert.Len(t, out.Purchases, 1)
	assert.Len(t, out.Sales, 1)
}

// since intermedio filtra lo anterior y conserva lo posterior.
func TestUpdatesRecent_FiltraPorSince(t *testing.T) {
	supplierRepo, customerRepo, purchaseRepo, saleRepo := seedUpdatesRepos(t)
	uc := NewUpdatesUseCase(supplierRepo, customerRepo, purchaseRepo, saleRepo)

	since := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.Recent(context.Background(), since)
	require.NoError(t, err)

	require.Len(t, out.Suppliers, 1)
	assert.Equal(t, "Ana Ruiz", out.Suppliers[0].Name)
	assert.Empty(t, out.Customers, "el cliente es anterior a since")
	assert.Empty(t, out.Purchases, "la compra es anterior a since")
	require.Len(t, out.Sales, 1)
	assert.Equal(t, "S-083-2222", out.Sales[0].SaleID)
	assert.Equal(t, since.Format(time.RFC3339), out.Since)
}

// since posterior a todo devuelve listas vacías, nunca nil.
func TestUpdatesRecent_SinCambios(t *testing.T) {
	supplierRepo, customerRepo, purchaseRepo, saleRepo := seedUpdatesRepos(t)
	uc := NewUpdatesUseCase(supplierRepo, customerRepo, purchaseRepo, saleRepo)

	out, err := uc.Recent(context.Background(), time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.NotNil(t, out.Suppliers)
	assert.Empty(t, out.Suppliers)
	assert.Empty(t, out.Customers)
	assert.Empty(t, out.Purchases)
	assert.Empty(t, out.Sales)
}
