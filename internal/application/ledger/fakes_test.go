package ledger

import (
	"context"
	"time"

	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. createErrs permite
// encolar errores que Create devuelve antes de insertar, para simular
// colisiones del índice único.

type fakeSupplierRepo struct {
	items      map[int64]*entity.Supplier
	nextID     int64
	createErrs []error
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: map[int64]*entity.Supplier{}, nextID: 1}
}

func (r *fakeSupplierRepo) popCreateErr() error {
	if len(r.createErrs) == 0 {
		return nil
	}
	err := r.createErrs[0]
	r.createErrs = r.createErrs[1:]
	return err
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	if err := r.popCreateErr(); err != nil {
		return err
	}
	for _, it := range r.items {
		if it.SupplierID == s.SupplierID {
			return domain.ErrDuplicate
		}
	}
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetByExternalID(supplierID string) (*entity.Supplier, error) {
	for _, it := range r.items {
		if it.SupplierID == supplierID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, it := range r.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	out := []*entity.Supplier{}
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) CreatedAfter(since time.Time) ([]*entity.Supplier, error) {
	out := []*entity.Supplier{}
	for _, it := range r.items {
		if it.CreatedAt.After(since) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	items      map[int64]*entity.Customer
	nextID     int64
	createErrs []error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[int64]*entity.Customer{}, nextID: 1}
}

func (r *fakeCustomerRepo) popCreateErr() error {
	if len(r.createErrs) == 0 {
		return nil
	}
	err := r.createErrs[0]
	r.createErrs = r.createErrs[1:]
	return err
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if err := r.popCreateErr(); err != nil {
		return err
	}
	for _, it := range r.items {
		if it.CustomerID == c.CustomerID || it.Phone == c.Phone {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) UpdateUID(id int64, uid string) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	it.UID = uid
	return nil
}

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByExternalID(customerID string) (*entity.Customer, error) {
	for _, it := range r.items {
		if it.CustomerID == customerID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByName(name string) (*entity.Customer, error) {
	for _, it := range r.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	for _, it := range r.items {
		if it.Phone == phone {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) CreatedAfter(since time.Time) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	for _, it := range r.items {
		if it.CreatedAt.After(since) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	items      map[int64]*entity.Purchase
	nextID     int64
	createErrs []error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{items: map[int64]*entity.Purchase{}, nextID: 1}
}

func (r *fakePurchaseRepo) popCreateErr() error {
	if len(r.createErrs) == 0 {
		return nil
	}
	err := r.createErrs[0]
	r.createErrs = r.createErrs[1:]
	return err
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	if err := r.popCreateErr(); err != nil {
		return err
	}
	for _, it := range r.items {
		if it.PurchaseID == p.PurchaseID {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePurchaseRepo) GetByExternalID(purchaseID string) (*entity.Purchase, error) {
	for _, it := range r.items {
		if it.PurchaseID == purchaseID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePurchaseRepo) List(limit int) ([]*entity.Purchase, error) {
	out := []*entity.Purchase{}
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePurchaseRepo) Update(p *entity.Purchase) error {
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) CreatedAfter(since time.Time) ([]*entity.Purchase, error) {
	out := []*entity.Purchase{}
	for _, it := range r.items {
		if it.Date.After(since) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	items      map[int64]*entity.Sale
	nextID     int64
	createErrs []error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{items: map[int64]*entity.Sale{}, nextID: 1}
}

func (r *fakeSaleRepo) popCreateErr() error {
	if len(r.createErrs) == 0 {
		return nil
	}
	err := r.createErrs[0]
	r.createErrs = r.createErrs[1:]
	return err
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	if err := r.popCreateErr(); err != nil {
		return err
	}
	for _, it := range r.items {
		if it.SaleID == s.SaleID {
			return domain.ErrDuplicate
		}
	}
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetByExternalID(saleID string) (*entity.Sale, error) {
	for _, it := range r.items {
		if it.SaleID == saleID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(limit int) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreatedAfter(since time.Time) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, it := range r.items {
		if it.Date.After(since) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTransactionRepo struct {
	items  []*entity.Transaction
	nextID int64
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1}
}

func (r *fakeTransactionRepo) Create(t *entity.Transaction) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeTransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	out := []*entity.Transaction{}
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListByRelated(relatedType, relatedID string) ([]*entity.Transaction, error) {
	out := []*entity.Transaction{}
	for _, it := range r.items {
		if it.RelatedType == relatedType && it.RelatedID == relatedID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	items  map[int64]*entity.Alert
	nextID int64
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{items: map[int64]*entity.Alert{}, nextID: 1}
}

func (r *fakeAlertRepo) Create(a *entity.Alert) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAlertRepo) GetByID(id int64) (*entity.Alert, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAlertRepo) List(onlyUnresolved bool, limit, offset int) ([]*entity.Alert, error) {
	out := []*entity.Alert{}
	for _, it := range r.items {
		if onlyUnresolved && it.Resolved {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) Resolve(id int64) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Resolved = true
	return nil
}

// fakeTxRunner ejecuta los callbacks sin transacción real, sobre los fakes.
type fakeTxRunner struct {
	saleRepo     *fakeSaleRepo
	txRepo       *fakeTransactionRepo
	alertRepo    *fakeAlertRepo
	customerRepo *fakeCustomerRepo
}

func (tr *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	txRepo repository.TransactionRepository,
	alertRepo repository.AlertRepository,
) error) error {
	return fn(tr.saleRepo, tr.txRepo, tr.alertRepo)
}

func (tr *fakeTxRunner) RunCustomer(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(tr.customerRepo)
}
