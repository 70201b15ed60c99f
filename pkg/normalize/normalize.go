package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// "Almacén" -> "Almacen", "Champaña" -> "Champana".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s sin acentos, en minúsculas y sin espacios sobrantes.
// Se usa para comparar nombres de ubicación y subcategorías que llegan
// escritos con o sin tildes desde los archivos cargados.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Equal compara dos cadenas ignorando tildes, mayúsculas y espacios extremos.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
