package repository

import "github.com/grocerybag/grocerybag-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	GetByID(id int64) (*entity.Alert, error)
	List(onlyUnresolved bool, limit, offset int) ([]*entity.Alert, error)
	Resolve(id int64) error
}
