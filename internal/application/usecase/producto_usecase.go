package usecase

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

// ProductoUseCase CRUD de productos dentro de una organización.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
	log          *logger.Logger
}

// NewProductoUseCase construye el caso de uso de productos.
func NewProductoUseCase(productoRepo repository.ProductoRepository, log *logger.Logger) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, log: log}
}

// Create crea un producto con stock inicial cero. El SKU debe ser único
// dentro de la organización.
func (uc *ProductoUseCase) Create(organizacionID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	nombre := strings.TrimSpace(in.Nombre)
	if sku == "" || nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.productoRepo.GetByOrganizacionYSKU(organizacionID, sku)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		OrganizacionID: organizacionID,
		SKU:            sku,
		Nombre:         nombre,
		Descripcion:    strings.TrimSpace(in.Descripcion),
		CategoriaID:    in.CategoriaID,
		Precio:         in.Precio,
		Stock:          0,
		StockMinimo:    in.StockMinimo,
		UnidadMedida:   in.UnidadMedida,
		Estado:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID devuelve un producto de la organización.
func (uc *ProductoUseCase) GetByID(organizacionID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if producto.OrganizacionID != organizacionID {
		return nil, domain.ErrForbidden
	}
	return toProductoResponse(producto), nil
}

// Update aplica cambios parciales. Stock no es editable por esta vía; solo los
// movimientos lo modifican.
func (uc *ProductoUseCase) Update(organizacionID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if producto.OrganizacionID != organizacionID {
		return nil, domain.ErrForbidden
	}

	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = *in.CategoriaID
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.StockMinimo = *in.StockMinimo
	}
	if in.UnidadMedida != nil {
		producto.UnidadMedida = *in.UnidadMedida
	}
	if in.Estado != nil {
		if *in.Estado != "active" && *in.Estado != "inactive" {
			return nil, domain.ErrInvalidInput
		}
		producto.Estado = *in.Estado
	}
	producto.UpdatedAt = time.Now()

	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos de la organización con paginación.
func (uc *ProductoUseCase) List(organizacionID string, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.DefaultPage()
	productos, err := uc.productoRepo.ListByOrganizacion(organizacionID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return &dto.ProductoListResponse{Productos: out, Limit: page.Limit, Offset: page.Offset}, nil
}

// Delete elimina un producto de la organización.
func (uc *ProductoUseCase) Delete(organizacionID, id string) error {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	if producto.OrganizacionID != organizacionID {
		return domain.ErrForbidden
	}
	return uc.productoRepo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		CategoriaID:  p.CategoriaID,
		Precio:       p.Precio,
		Stock:        p.Stock,
		StockMinimo:  p.StockMinimo,
		UnidadMedida: p.UnidadMedida,
		Estado:       p.Estado,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
