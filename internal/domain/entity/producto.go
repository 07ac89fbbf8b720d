package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un SKU del inventario de una organización.
// Stock es recalculado por un trigger de la base de datos al insertar
// movimientos; esta capa nunca lo computa, solo lo relee.
type Producto struct {
	ID             string
	OrganizacionID string
	SKU            string // único por organización
	Nombre         string
	Descripcion    string
	CategoriaID    string // vacío si sin categoría
	Precio         decimal.Decimal
	Stock          int
	StockMinimo    int
	UnidadMedida   string
	Estado         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
