package entity

import "time"

// Supplier representa un proveedor de bolsas.
type Supplier struct {
	ID         int64
	SupplierID string // id externo SU-YYMMDD-<Nombre><rand4>-<checksum>; inmutable una vez generado
	Name       string
	Phone      string
	Address    string
	CreatedAt  time.Time
}
