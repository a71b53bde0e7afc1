package repository

import (
	"time"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	GetByExternalID(supplierID string) (*entity.Supplier, error)
	// GetByName busca por nombre exacto; si hay homónimos devuelve el primero (limitación documentada).
	GetByName(name string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	CreatedAfter(since time.Time) ([]*entity.Supplier, error)
}
