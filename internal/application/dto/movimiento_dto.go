package dto

import "time"

// RegistrarMovimientoRequest entrada para registrar un movimiento de stock.
// Cantidad siempre positiva; la dirección la determina Tipo.
type RegistrarMovimientoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Tipo       string `json:"tipo" validate:"required,oneof=ENTRADA SALIDA AJUSTE_POSITIVO AJUSTE_NEGATIVO"`
	Cantidad   int    `json:"cantidad" validate:"required,gt=0"`
	Motivo     string `json:"motivo" validate:"omitempty,max=500"`
}

// MovimientoResponse salida de un movimiento, incluye el stock releído tras el
// recálculo del trigger. En listados históricos el stock resultante se omite.
type MovimientoResponse struct {
	ID              string    `json:"id"`
	ProductoID      string    `json:"producto_id"`
	Tipo            string    `json:"tipo"`
	Cantidad        int       `json:"cantidad"`
	Motivo          string    `json:"motivo,omitempty"`
	UserID          string    `json:"user_id"`
	StockResultante int       `json:"stock_resultante,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovimientoListResponse listado de movimientos.
type MovimientoListResponse struct {
	Movimientos []*MovimientoResponse `json:"movimientos"`
	Limit       int                   `json:"limit"`
	Offset      int                   `json:"offset"`
}
