package repository

import (
	"time"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id int64) (*entity.Purchase, error)
	GetByExternalID(purchaseID string) (*entity.Purchase, error)
	List(limit int) ([]*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	CreatedAfter(since time.Time) ([]*entity.Purchase, error)
}
