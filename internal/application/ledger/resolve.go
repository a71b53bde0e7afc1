package ledger

import (
	"strconv"
	"strings"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

// Resolución en tres vías: id numérico, id externo, nombre exacto (primera
// coincidencia gana). Los nombres homónimos NO se desambiguan; limitación
// heredada del flujo de captura.

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resolveSupplier busca un proveedor por id numérico, id externo (acepta el
// prefijo de UI "SUP-") o nombre exacto. Devuelve nil si no hay coincidencia.
func resolveSupplier(repo repository.SupplierRepository, ref string) (*entity.Supplier, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		return repo.GetByID(id)
	}
	if s, err := repo.GetByExternalID(ref); err != nil || s != nil {
		return s, err
	}
	if candidate := strings.TrimPrefix(ref, "SUP-"); candidate != ref {
		if s, err := repo.GetByExternalID(candidate); err != nil || s != nil {
			return s, err
		}
	}
	return repo.GetByName(ref)
}

// resolveCustomer busca un cliente por id numérico, id externo (acepta el id
// sin el prefijo "CU-") o nombre exacto. Devuelve nil si no hay coincidencia.
func resolveCustomer(repo repository.CustomerRepository, ref string) (*entity.Customer, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	if isDigits(ref) {
		id, _ := strconv.ParseInt(ref, 10, 64)
		return repo.GetByID(id)
	}
	if c, err := repo.GetByExternalID(ref); err != nil || c != nil {
		return c, err
	}
	if candidate := strings.TrimPrefix(ref, "CU-"); candidate != ref {
		if c, err := repo.GetByExternalID(candidate); err != nil || c != nil {
			return c, err
		}
	}
	return repo.GetByName(ref)
}
