package entity

import "time"

// Customer representa un cliente comprador de bolsas.
type Customer struct {
	ID         int64
	CustomerID string // id externo CU-YYMMDD-<Nombre><rand4>-<checksum>; inmutable una vez generado
	UID        string // uid corto CU-%04d, reservado en la misma transacción del insert
	Name       string
	Phone      string // único
	Address    string
	CreatedAt  time.Time
}
