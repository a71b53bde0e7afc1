package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un movimiento de caja.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (type, amount, related_type, related_id, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.Type, t.Amount, t.RelatedType, t.RelatedID, t.Note, t.Date,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List lista movimientos, más recientes primero, con paginación.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, type, amount, related_type, related_id, note, date
		FROM transactions ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListByRelated lista los movimientos ligados a un documento (ej. una venta).
func (r *TransactionRepo) ListByRelated(relatedType, relatedID string) ([]*entity.Transaction, error) {
	query := `
		SELECT id, type, amount, related_type, related_id, note, date
		FROM transactions WHERE related_type = $1 AND related_id = $2 ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, relatedType, relatedID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by related: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.RelatedType, &t.RelatedID, &t.Note, &t.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
