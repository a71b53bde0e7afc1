package ledger

import (
	"context"
	"time"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// TransactionUseCase casos de uso para movimientos de caja manuales y consulta.
// Los pagos de venta se crean desde SaleUseCase, no desde aquí.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra un movimiento manual (gasto, efectivo u online).
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Transaction{
		Type:        in.Type,
		Amount:      in.Amount,
		RelatedType: in.RelatedType,
		RelatedID:   in.RelatedID,
		Note:        in.Note,
		Date:        time.Now(),
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// List devuelve movimientos, más recientes primero.
func (uc *TransactionUseCase) List(ctx context.Context, limit, offset int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	txs, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		RelatedType: t.RelatedType,
		RelatedID:   t.RelatedID,
		Note:        t.Note,
		Date:        t.Date,
	}
}
