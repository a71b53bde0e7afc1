package ledger

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/extid"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	txRunner TxRunner
	repo     repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(txRunner TxRunner, repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{txRunner: txRunner, repo: repo}
}

// Create crea un cliente: id externo CU-YYMMDD-... más el uid corto CU-%04d
// derivado del id numérico. Insert y reserva del uid corren en la misma
// transacción para que nunca se observe un cliente sin uid.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByPhone(in.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrPhoneAlreadyExists
	}

	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
	}

	err := uc.txRunner.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		ext, err := extid.ForParty(extid.PrefixCustomer, in.Name, now, extid.PartyRand4())
		if err != nil {
			return domain.ErrInvalidInput
		}
		customer.CustomerID = ext
		if err := repo.Create(customer); err != nil {
			if !errors.Is(err, domain.ErrDuplicate) {
				return err
			}
			ext, _ = extid.ForParty(extid.PrefixCustomer, in.Name, now, extid.PartyRand4())
			customer.CustomerID = ext
			if err := repo.Create(customer); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return domain.ErrDuplicateExternalID
				}
				return err
			}
		}
		customer.UID = extid.ForUser(entity.RoleCustomer, customer.ID)
		return repo.UpdateUID(customer.ID, customer.UID)
	})
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(customer), nil
}

// Get devuelve un cliente por id numérico, id externo o nombre exacto.
func (uc *CustomerUseCase) Get(ctx context.Context, ref string) (*dto.CustomerResponse, error) {
	customer, err := resolveCustomer(uc.repo, ref)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update edita los datos de contacto. Ids externos y uid son inmutables.
func (uc *CustomerUseCase) Update(ctx context.Context, ref string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.findByRef(ref)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Address != "" {
		customer.Address = in.Address
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List devuelve clientes, más recientes primero.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	customers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func (uc *CustomerUseCase) findByRef(ref string) (*entity.Customer, error) {
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		return uc.repo.GetByID(id)
	}
	return uc.repo.GetByExternalID(ref)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		UID:        c.UID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}
