package entity

import "time"

// Tipos de movimiento de inventario. La dirección la lleva el tipo; la
// cantidad almacenada siempre es un entero positivo.
const (
	MovimientoEntrada        = "ENTRADA"
	MovimientoSalida         = "SALIDA"
	MovimientoAjustePositivo = "AJUSTE_POSITIVO"
	MovimientoAjusteNegativo = "AJUSTE_NEGATIVO"
)

// TipoMovimientoValido informa si tipo es uno de los cuatro tipos conocidos.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjustePositivo, MovimientoAjusteNegativo:
		return true
	}
	return false
}

// Movimiento registra un cambio de stock de un producto, atribuido al usuario
// que lo realizó. El recálculo del stock resultante es responsabilidad del
// trigger en la base de datos.
type Movimiento struct {
	ID             string
	OrganizacionID string
	ProductoID     string
	Tipo           string // ENTRADA, SALIDA, AJUSTE_POSITIVO, AJUSTE_NEGATIVO
	Cantidad       int    // siempre positivo
	Motivo         string
	UserID         string
	CreatedAt      time.Time
}
