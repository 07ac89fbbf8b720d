package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/techstock/techstock-api/pkg/slug"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		nombre string
		in     string
		want   string
	}{
		{"espacios a guiones", "Mi Tienda", "mi-tienda"},
		{"acentos eliminados", "Panadería San José", "panaderia-san-jose"},
		{"enie transliterada por marca", "La Ñapa", "la-napa"},
		{"simbolos colapsados", "Café & Té!!", "cafe-te"},
		{"guiones repetidos colapsados", "a---b", "a-b"},
		{"guiones en extremos recortados", "--hola--", "hola"},
		{"ya normalizado queda igual", "mi-tienda", "mi-tienda"},
		{"mayusculas", "ABARROTES", "abarrotes"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Normalize(tc.in))
		})
	}
}

// La normalización debe ser idempotente: aplicarla dos veces da lo mismo que
// aplicarla una vez.
func TestNormalize_Idempotente(t *testing.T) {
	entradas := []string{
		"Mi Tienda",
		"Panadería São João",
		"  espacios  por  todos  lados  ",
		"números 123 y símbolos #$%",
		"ya-es-un-slug",
		strings.Repeat("nombre muy largo ", 10),
	}
	for _, in := range entradas {
		una := slug.Normalize(in)
		dos := slug.Normalize(una)
		assert.Equal(t, una, dos, "Normalize no es idempotente para %q", in)
	}
}

func TestNormalize_RespetaLongitudMaxima(t *testing.T) {
	s := slug.Normalize(strings.Repeat("abc ", 40))
	assert.LessOrEqual(t, len(s), slug.MaxLen)
	assert.False(t, strings.HasSuffix(s, "-"), "el recorte no debe dejar guión final")
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"mi-tienda", true},
		{"abc", true},
		{"a1-b2-c3", true},
		{"ab", false},                             // muy corto
		{strings.Repeat("a", slug.MaxLen+1), false}, // muy largo
		{"Mi-Tienda", false},                      // mayúsculas
		{"-hola", false},                          // guión inicial
		{"hola-", false},                          // guión final
		{"con espacios", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.IsValid(tc.in), "IsValid(%q)", tc.in)
	}
}
