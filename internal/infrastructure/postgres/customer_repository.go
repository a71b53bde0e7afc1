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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna el id numérico generado,
// para que el caller pueda reservar el uid dentro de la misma transacción.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (customer_id, uid, name, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.CustomerID, customer.UID, customer.Name, customer.Phone, customer.Address, customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// UpdateUID fija el uid corto derivado del id numérico.
func (r *CustomerRepo) UpdateUID(id int64, uid string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE customers SET uid = $2 WHERE id = $1`, id, uid)
	if err != nil {
		return fmt.Errorf("update customer uid: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por id numérico.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByExternalID obtiene un cliente por su id externo.
func (r *CustomerRepo) GetByExternalID(customerID string) (*entity.Customer, error) {
	return r.getBy(`WHERE customer_id = $1`, customerID)
}

// GetByName obtiene el primer cliente con ese nombre exacto.
func (r *CustomerRepo) GetByName(name string) (*entity.Customer, error) {
	return r.getBy(`WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

// GetByPhone obtiene un cliente por teléfono (único).
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	return r.getBy(`WHERE phone = $1`, phone)
}

func (r *CustomerRepo) getBy(where string, arg any) (*entity.Customer, error) {
	query := `
		SELECT id, customer_id, uid, name, phone, address, created_at
		FROM customers ` + where
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.CustomerID, &c.UID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes, más recientes primero, con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, customer_id, uid, name, phone, address, created_at
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CustomerID, &c.UID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto. Id externo y uid no se tocan.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, address = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// CreatedAfter lista clientes creados después de since, ascendente.
func (r *CustomerRepo) CreatedAfter(since time.Time) ([]*entity.Customer, error) {
	query := `
		SELECT id, customer_id, uid, name, phone, address, created_at
		FROM customers WHERE created_at > $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list customers since: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CustomerID, &c.UID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
