package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	SKU          string          `json:"sku" validate:"required,min=2,max=50"`
	Nombre       string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion  string          `json:"descripcion" validate:"omitempty,max=500"`
	CategoriaID  string          `json:"categoria_id" validate:"omitempty,uuid"`
	Precio       decimal.Decimal `json:"precio"`
	StockMinimo  int             `json:"stock_minimo" validate:"min=0"`
	UnidadMedida string          `json:"unidad_medida" validate:"omitempty,max=20"`
}

// UpdateProductoRequest entrada para actualizar un producto.
// Stock no es editable: solo cambia vía movimientos.
type UpdateProductoRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	CategoriaID  *string          `json:"categoria_id"`
	Precio       *decimal.Decimal `json:"precio"`
	StockMinimo  *int             `json:"stock_minimo"`
	UnidadMedida *string          `json:"unidad_medida"`
	Estado       *string          `json:"estado"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	CategoriaID  string          `json:"categoria_id,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	StockMinimo  int             `json:"stock_minimo"`
	UnidadMedida string          `json:"unidad_medida"`
	Estado       string          `json:"estado"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Productos []*ProductoResponse `json:"productos"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}
