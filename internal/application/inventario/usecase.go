package inventario

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/logger"
)

// UseCase registra y lista movimientos de stock. El stock resultante nunca se
// calcula aquí: lo recalcula el trigger de la base al insertar el movimiento y
// esta capa lo relee para devolverlo en la respuesta.
type UseCase struct {
	movimientoRepo repository.MovimientoRepository
	productoRepo   repository.ProductoRepository
	log            *logger.Logger
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	movimientoRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{movimientoRepo: movimientoRepo, productoRepo: productoRepo, log: log}
}

// RegistrarMovimiento inserta un movimiento atribuido al usuario y devuelve el
// stock releído tras el recálculo. El producto debe pertenecer a la
// organización del contexto.
func (uc *UseCase) RegistrarMovimiento(organizacionID, userID string, in dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !entity.TipoMovimientoValido(in.Tipo) || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if producto.OrganizacionID != organizacionID {
		return nil, domain.ErrForbidden
	}

	movimiento := &entity.Movimiento{
		ID:             uuid.New().String(),
		OrganizacionID: organizacionID,
		ProductoID:     in.ProductoID,
		Tipo:           in.Tipo,
		Cantidad:       in.Cantidad,
		Motivo:         strings.TrimSpace(in.Motivo),
		UserID:         userID,
		CreatedAt:      time.Now(),
	}
	if err := uc.movimientoRepo.Create(movimiento); err != nil {
		return nil, err
	}

	stock, err := uc.productoRepo.GetStock(in.ProductoID)
	if err != nil {
		// El movimiento ya quedó registrado; devolver el stock previo releído
		// con error sería peor que avisar y continuar.
		uc.log.Warn().Err(err).
			Str("producto_id", in.ProductoID).
			Msg("no se pudo releer el stock tras registrar el movimiento")
		stock = producto.Stock
	}

	uc.log.Info().
		Str("organizacion_id", organizacionID).
		Str("producto_id", in.ProductoID).
		Str("tipo", in.Tipo).
		Int("cantidad", in.Cantidad).
		Int("stock_resultante", stock).
		Msg("movimiento de stock registrado")

	return toMovimientoResponse(movimiento, stock), nil
}

// ListMovimientos lista movimientos de la organización, opcionalmente
// filtrados por tipo, en orden cronológico descendente.
func (uc *UseCase) ListMovimientos(organizacionID, tipo string, page dto.PageRequest) (*dto.MovimientoListResponse, error) {
	if tipo != "" && !entity.TipoMovimientoValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	movimientos, err := uc.movimientoRepo.ListByOrganizacion(organizacionID, tipo, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, toMovimientoResponse(m, 0))
	}
	return &dto.MovimientoListResponse{Movimientos: out, Limit: page.Limit, Offset: page.Offset}, nil
}

func toMovimientoResponse(m *entity.Movimiento, stock int) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:              m.ID,
		ProductoID:      m.ProductoID,
		Tipo:            m.Tipo,
		Cantidad:        m.Cantidad,
		Motivo:          m.Motivo,
		UserID:          m.UserID,
		StockResultante: stock,
		CreatedAt:       m.CreatedAt,
	}
}
