package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeCrop deja el nombre del cultivo en NFC y sin espacios laterales,
// para que "Maïs" compuesto y descompuesto apunten a la misma entrada de stock.
func NormalizeCrop(crop string) string {
	return norm.NFC.String(strings.TrimSpace(crop))
}
