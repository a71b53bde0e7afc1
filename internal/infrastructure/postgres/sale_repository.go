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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta y asigna el id numérico generado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (sale_id, customer_id, bag_size, units, total_amount, paid_amount, outstanding, invoice_image, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.SaleID, sale.CustomerID, sale.BagSize, sale.Units,
		sale.TotalAmount, sale.PaidAmount, sale.Outstanding, sale.InvoiceImage, sale.Date,
	).Scan(&sale.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por id numérico.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByExternalID obtiene una venta por su id externo S-MMW-rand4.
func (r *SaleRepo) GetByExternalID(saleID string) (*entity.Sale, error) {
	return r.getBy(`WHERE sale_id = $1`, saleID)
}

func (r *SaleRepo) getBy(where string, arg any) (*entity.Sale, error) {
	query := `
		SELECT id, sale_id, customer_id, bag_size, units, total_amount, paid_amount, outstanding, invoice_image, date
		FROM sales ` + where
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.SaleID, &s.CustomerID, &s.BagSize, &s.Units,
		&s.TotalAmount, &s.PaidAmount, &s.Outstanding, &s.InvoiceImage, &s.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas, más recientes primero.
func (r *SaleRepo) List(limit int) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_id, customer_id, bag_size, units, total_amount, paid_amount, outstanding, invoice_image, date
		FROM sales ORDER BY date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// Update actualiza una venta. El id externo no se toca.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET bag_size = $2, units = $3, total_amount = $4, paid_amount = $5, outstanding = $6, invoice_image = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.BagSize, sale.Units, sale.TotalAmount, sale.PaidAmount, sale.Outstanding, sale.InvoiceImage,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// CreatedAfter lista ventas registradas después de since, ascendente.
func (r *SaleRepo) CreatedAfter(since time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_id, customer_id, bag_size, units, total_amount, paid_amount, outstanding, invoice_image, date
		FROM sales WHERE date > $1 ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list sales since: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SaleID, &s.CustomerID, &s.BagSize, &s.Units,
			&s.TotalAmount, &s.PaidAmount, &s.Outstanding, &s.InvoiceImage, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
