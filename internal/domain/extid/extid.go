// Package extid genera los identificadores externos legibles del sistema:
//
//	Proveedor/Cliente:  SU-251123-AshaSen1234-0567   (prefijo-fecha-nombre+rand4-checksum)
//	Compra/Venta:       P-112-3847                   (prefijo-mes+semana-rand4)
//	Usuario:            AD-0001 | US-0002 | CU-0003  (prefijo de rol + id numérico)
//
// El checksum (suma de códigos de carácter módulo 10000) reduce el choque entre
// sufijos aleatorios iguales el mismo día para nombres parecidos, pero NO
// garantiza unicidad global: el índice único del store es el respaldo real y el
// caller debe reintentar con otro rand4 ante una violación de constraint.
package extid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Prefijos de id externo por tipo de entidad.
const (
	PrefixSupplier = "SU"
	PrefixCustomer = "CU"
	PrefixPurchase = "P"
	PrefixSale     = "S"
)

// Patrones de formato por tipo de entidad.
var (
	SupplierIDPattern = regexp.MustCompile(`^SU-\d{6}-.*\d{4}-\d{4}$`)
	CustomerIDPattern = regexp.MustCompile(`^CU-\d{6}-.*\d{4}-\d{4}$`)
	PurchaseIDPattern = regexp.MustCompile(`^P-\d{2}[1-5]-\d{4}$`)
	SaleIDPattern     = regexp.MustCompile(`^S-\d{2}[1-5]-\d{4}$`)
	UserUIDPattern    = regexp.MustCompile(`^(AD|US|CU)-\d{4}$`)
)

// ForParty genera el id externo de un proveedor o cliente:
// <SU|CU>-YYMMDD-<Primera><Última><rand4>-<suma de códigos % 10000, 4 dígitos>.
// Primera/Última son la primera y última palabra del nombre normalizado.
func ForParty(prefix, name string, date time.Time, rand4 int) (string, error) {
	first, last := splitName(name)
	if first == "" {
		return "", fmt.Errorf("extid: nombre vacío")
	}
	if rand4 < 1000 || rand4 > 9999 {
		return "", fmt.Errorf("extid: rand4 fuera de rango: %d", rand4)
	}
	x6 := date.UTC().Format("060102")
	sum := 0
	for _, r := range first + last {
		sum += int(r)
	}
	return fmt.Sprintf("%s-%s-%s%s%d-%04d", prefix, x6, first, last, rand4, sum%10000), nil
}

// ForEntry genera el id externo de una compra o venta:
// <P|S>-<mes 2 dígitos><semana del mes 1..5>-<rand4>.
// La semana del mes es 1-based: (día-1)/7 + 1.
func ForEntry(prefix string, date time.Time, rand4 string) string {
	d := date.UTC()
	week := (d.Day()-1)/7 + 1
	return fmt.Sprintf("%s-%02d%d-%s", prefix, int(d.Month()), week, rand4)
}

// ForUser genera el uid de un usuario a partir del rol y el id numérico de fila:
// AD-%04d para admin, US-%04d para user, CU-%04d para cualquier otro rol.
func ForUser(role string, id int64) string {
	prefix := "CU"
	switch role {
	case "admin":
		prefix = "AD"
	case "user":
		prefix = "US"
	}
	return fmt.Sprintf("%s-%04d", prefix, id)
}

// PartyRand4 devuelve un aleatorio uniforme en [1000, 9999] para ids de proveedor/cliente.
func PartyRand4() int {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand solo falla si el SO no entrega entropía; degradar a un valor fijo válido
		return 1000
	}
	return int(n.Int64()) + 1000
}

// EntryRand4 devuelve los primeros 4 dígitos decimales de un UUID v4,
// como sufijo aleatorio para ids de compra/venta.
func EntryRand4() string {
	u := uuid.New()
	s := fmt.Sprintf("%d", binary.BigEndian.Uint64(u[:8]))
	for len(s) < 4 {
		s = "0" + s
	}
	return s[:4]
}

// splitName normaliza el nombre (sin marcas diacríticas) y devuelve la primera
// y la última palabra. Si el nombre tiene una sola palabra, last es "".
func splitName(name string) (first, last string) {
	fields := strings.Fields(normalizeName(name))
	if len(fields) == 0 {
		return "", ""
	}
	first = fields[0]
	if len(fields) > 1 {
		last = fields[len(fields)-1]
	}
	return first, last
}

// normalizeName descompone a NFD, elimina marcas combinantes (tildes) y recompone.
// Para nombres ASCII es la identidad, así el checksum coincide con la suma simple.
func normalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return out
}
