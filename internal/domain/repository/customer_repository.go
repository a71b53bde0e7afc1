package repository

import (
	"time"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Create asigna el id numérico generado en customer.ID (insert ... RETURNING id).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	UpdateUID(id int64, uid string) error
	GetByID(id int64) (*entity.Customer, error)
	GetByExternalID(customerID string) (*entity.Customer, error)
	// GetByName busca por nombre exacto; si hay homónimos devuelve el primero (limitación documentada).
	GetByName(name string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	CreatedAfter(since time.Time) ([]*entity.Customer, error)
}
