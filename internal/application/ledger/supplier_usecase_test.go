package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/extid"
)

func TestCreateSupplier_GeneraIDExterno(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name:  "Pedro Ramirez",
		Phone: "3020001122",
	})
	require.NoError(t, err)
	assert.Regexp(t, extid.SupplierIDPattern, resp.SupplierID)
	assert.Contains(t, resp.SupplierID, "PedroRamirez", "el id externo lleva nombre y apellido sin espacios")
}

func TestCreateSupplier_NombreVacio(t *testing.T) {
	uc := NewSupplierUseCase(newFakeSupplierRepo())

	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Phone: "3020001122"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSupplier_ReintentaUnaVezAnteColision(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)
	repo.createErrs = []error{domain.ErrDuplicate}

	resp, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Pedro Ramirez"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SupplierID)

	repo.createErrs = []error{domain.ErrDuplicate, domain.ErrDuplicate}
	_, err = uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Pedro Ramirez"})
	assert.ErrorIs(t, err, domain.ErrDuplicateExternalID)
}

func TestGetSupplier_TresVias(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Pedro Ramirez"})
	require.NoError(t, err)

	byNum, err := uc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, created.SupplierID, byNum.SupplierID)

	byExt, err := uc.Get(context.Background(), created.SupplierID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byExt.ID)

	byName, err := uc.Get(context.Background(), "Pedro Ramirez")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = uc.Get(context.Background(), "Nadie Conocido")
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestUpdateSupplier_IDExternoInmutable(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := NewSupplierUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Pedro Ramirez", Phone: "111"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.SupplierID, dto.UpdateSupplierRequest{
		Name: "Pedro A. Ramirez", Address: "Calle 10 #5-23",
	})
	require.NoError(t, err)
	assert.Equal(t, created.SupplierID, updated.SupplierID, "el id externo nunca se regenera al editar")
	assert.Equal(t, "Pedro A. Ramirez", updated.Name)
	assert.Equal(t, "111", updated.Phone, "campo vacío = sin cambio")
	assert.Equal(t, "Calle 10 #5-23", updated.Address)
}
