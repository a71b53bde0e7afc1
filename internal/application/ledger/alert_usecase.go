package ledger

import (
	"context"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// AlertUseCase consulta y resolución de alertas de reporte.
type AlertUseCase struct {
	repo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// List devuelve alertas, más recientes primero; onlyUnresolved filtra las pendientes.
func (uc *AlertUseCase) List(ctx context.Context, onlyUnresolved bool, limit, offset int) ([]*dto.AlertResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	alerts, err := uc.repo.List(onlyUnresolved, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	return out, nil
}

// Resolve marca una alerta como resuelta.
func (uc *AlertUseCase) Resolve(ctx context.Context, id int64) (*dto.AlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Resolve(id); err != nil {
		return nil, err
	}
	alert.Resolved = true
	return toAlertResponse(alert), nil
}

func toAlertResponse(a *entity.Alert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:          a.ID,
		Type:        a.Type,
		Message:     a.Message,
		RelatedType: a.RelatedType,
		RelatedID:   a.RelatedID,
		Resolved:    a.Resolved,
		CreatedAt:   a.CreatedAt,
	}
}
