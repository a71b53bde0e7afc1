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

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor con su id externo SU-YYMMDD-<Nombre><rand4>-<checksum>.
// El id se genera una sola vez y nunca se reasigna; ante colisión en el índice
// único se reintenta exactamente una vez con otro sufijo aleatorio.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
	}

	ext, err := extid.ForParty(extid.PrefixSupplier, in.Name, now, extid.PartyRand4())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier.SupplierID = ext
	if err := uc.repo.Create(supplier); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		ext, _ = extid.ForParty(extid.PrefixSupplier, in.Name, now, extid.PartyRand4())
		supplier.SupplierID = ext
		if err := uc.repo.Create(supplier); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return nil, domain.ErrDuplicateExternalID
			}
			return nil, err
		}
	}

	return toSupplierResponse(supplier), nil
}

// Get devuelve un proveedor por id numérico, id externo o nombre exacto.
func (uc *SupplierUseCase) Get(ctx context.Context, ref string) (*dto.SupplierResponse, error) {
	supplier, err := resolveSupplier(uc.repo, ref)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update edita los datos de contacto. El id externo es inmutable.
func (uc *SupplierUseCase) Update(ctx context.Context, ref string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.findByRef(ref)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	if in.Phone != "" {
		supplier.Phone = in.Phone
	}
	if in.Address != "" {
		supplier.Address = in.Address
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve proveedores, más recientes primero.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) ([]*dto.SupplierResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	suppliers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

func (uc *SupplierUseCase) findByRef(ref string) (*entity.Supplier, error) {
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		return uc.repo.GetByID(id)
	}
	return uc.repo.GetByExternalID(ref)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:         s.ID,
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Phone:      s.Phone,
		Address:    s.Address,
		CreatedAt:  s.CreatedAt,
	}
}
