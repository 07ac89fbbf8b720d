// Package slug normaliza nombres a identificadores URL-safe para organizaciones.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Longitudes permitidas para un slug.
const (
	MinLen = 3
	MaxLen = 50
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	valid    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Normalize transforma un texto libre en slug: minúsculas, sin acentos,
// caracteres no alfanuméricos a guiones, sin guiones al inicio/final y con
// longitud máxima MaxLen. La transformación es idempotente:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)

	// NFD + eliminación de marcas diacríticas: "panadería" -> "panaderia".
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLen {
		s = strings.Trim(s[:MaxLen], "-")
	}
	return s
}

// IsValid informa si s ya es un slug bien formado (solo minúsculas, números y
// guiones internos) con longitud dentro de los límites.
func IsValid(s string) bool {
	return len(s) >= MinLen && len(s) <= MaxLen && valid.MatchString(s)
}
