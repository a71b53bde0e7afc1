package repository

import "github.com/grocerybag/grocerybag-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	List(limit, offset int) ([]*entity.Transaction, error)
	ListByRelated(relatedType, relatedID string) ([]*entity.Transaction, error)
}
