package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una nueva compra y asigna el id numérico generado.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (purchase_id, supplier_id, bag_size, units, price_per_unit, total_amount, invoice_image, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		purchase.PurchaseID, purchase.SupplierID, purchase.BagSize, purchase.Units,
		purchase.PricePerUnit, purchase.TotalAmount, purchase.InvoiceImage, purchase.Date,
	).Scan(&purchase.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por id numérico.
func (r *PurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByExternalID obtiene una compra por su id externo P-MMW-rand4.
func (r *PurchaseRepo) GetByExternalID(purchaseID string) (*entity.Purchase, error) {
	return r.getBy(`WHERE purchase_id = $1`, purchaseID)
}

func (r *PurchaseRepo) getBy(where string, arg any) (*entity.Purchase, error) {
	query := `
		SELECT id, purchase_id, supplier_id, bag_size, units, price_per_unit, total_amount, invoice_image, date
		FROM purchases ` + where
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.PurchaseID, &p.SupplierID, &p.BagSize, &p.Units,
		&p.PricePerUnit, &p.TotalAmount, &p.InvoiceImage, &p.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// List lista compras, más recientes primero.
func (r *PurchaseRepo) List(limit int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, purchase_id, supplier_id, bag_size, units, price_per_unit, total_amount, invoice_image, date
		FROM purchases ORDER BY date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	return scanPurchases(rows)
}

// Update actualiza una compra. El id externo no se toca.
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET bag_size = $2, units = $3, price_per_unit = $4, total_amount = $5, invoice_image = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.BagSize, purchase.Units, purchase.PricePerUnit, purchase.TotalAmount, purchase.InvoiceImage,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// CreatedAfter lista compras registradas después de since, ascendente.
func (r *PurchaseRepo) CreatedAfter(since time.Time) ([]*entity.Purchase, error) {
	query := `
		SELECT id, purchase_id, supplier_id, bag_size, units, price_per_unit, total_amount, invoice_image, date
		FROM purchases WHERE date > $1 ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list purchases since: %w", err)
	}
	defer rows.Close()
	return scanPurchases(rows)
}

func scanPurchases(rows pgx.Rows) ([]*entity.Purchase, error) {
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.PurchaseID, &p.SupplierID, &p.BagSize, &p.Units,
			&p.PricePerUnit, &p.TotalAmount, &p.InvoiceImage, &p.Date); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
