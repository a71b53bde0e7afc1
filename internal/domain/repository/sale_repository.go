package repository

import (
	"time"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	GetByExternalID(saleID string) (*entity.Sale, error)
	List(limit int) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	CreatedAfter(since time.Time) ([]*entity.Sale, error)
}
