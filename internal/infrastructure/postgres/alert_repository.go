package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(a *entity.Alert) error {
	query := `
		INSERT INTO alerts (type, message, related_type, related_id, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.Type, a.Message, a.RelatedType, a.RelatedID, a.Resolved, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por id.
func (r *AlertRepo) GetByID(id int64) (*entity.Alert, error) {
	query := `
		SELECT id, type, message, related_type, related_id, resolved, created_at
		FROM alerts WHERE id = $1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Type, &a.Message, &a.RelatedType, &a.RelatedID, &a.Resolved, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// List lista alertas, más recientes primero; onlyUnresolved filtra las pendientes.
func (r *AlertRepo) List(onlyUnresolved bool, limit, offset int) ([]*entity.Alert, error) {
	query := `
		SELECT id, type, message, related_type, related_id, resolved, created_at
		FROM alerts WHERE ($1 = FALSE OR resolved = FALSE)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyUnresolved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.Message, &a.RelatedType, &a.RelatedID, &a.Resolved, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Resolve marca una alerta como resuelta.
func (r *AlertRepo) Resolve(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE alerts SET resolved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	return nil
}
