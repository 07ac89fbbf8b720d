package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstock/techstock-api/internal/application/dto"
	"github.com/techstock/techstock-api/internal/application/usecase"
	"github.com/techstock/techstock-api/internal/domain"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/pkg/logger"
)

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: map[string]*entity.Producto{}}
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error { f.productos[p.ID] = p; return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.productos[id], nil
}
func (f *fakeProductoRepo) GetByOrganizacionYSKU(orgID, sku string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.OrganizacionID == orgID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductoRepo) Update(p *entity.Producto) error { f.productos[p.ID] = p; return nil }
func (f *fakeProductoRepo) ListByOrganizacion(orgID string, limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if p.OrganizacionID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductoRepo) GetStock(id string) (int, error) {
	p, ok := f.productos[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.Stock, nil
}
func (f *fakeProductoRepo) Delete(id string) error { delete(f.productos, id); return nil }

func armarProductos() (*usecase.ProductoUseCase, *fakeProductoRepo) {
	repo := newFakeProductoRepo()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return usecase.NewProductoUseCase(repo, log), repo
}

func TestCreateProducto_StockInicialCero(t *testing.T) {
	uc, _ := armarProductos()

	out, err := uc.Create("org1", dto.CreateProductoRequest{
		SKU:    "PAN-001",
		Nombre: "Pan de masa madre",
		Precio: decimal.NewFromFloat(5.50),
	})
	require.NoError(t, err)
	assert.Zero(t, out.Stock, "el stock solo se mueve por movimientos")
	assert.Equal(t, "active", out.Estado)
}

func TestCreateProducto_SKUDuplicadoEnLaOrganizacion(t *testing.T) {
	uc, _ := armarProductos()
	_, err := uc.Create("org1", dto.CreateProductoRequest{SKU: "PAN-001", Nombre: "Pan"})
	require.NoError(t, err)

	_, err = uc.Create("org1", dto.CreateProductoRequest{SKU: "PAN-001", Nombre: "Otro pan"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El mismo SKU en otra organización es válido.
	_, err = uc.Create("org2", dto.CreateProductoRequest{SKU: "PAN-001", Nombre: "Pan ajeno"})
	assert.NoError(t, err)
}

func TestCreateProducto_Invalido(t *testing.T) {
	uc, _ := armarProductos()
	casos := []dto.CreateProductoRequest{
		{SKU: "", Nombre: "Sin SKU"},
		{SKU: "X-1", Nombre: "   "},
		{SKU: "X-1", Nombre: "Precio negativo", Precio: decimal.NewFromInt(-1)},
		{SKU: "X-1", Nombre: "Mínimo negativo", StockMinimo: -2},
	}
	for _, in := range casos {
		_, err := uc.Create("org1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "request %+v", in)
	}
}

func TestGetProducto_DeOtraOrganizacion(t *testing.T) {
	uc, repo := armarProductos()
	repo.productos["p1"] = &entity.Producto{ID: "p1", OrganizacionID: "org1", SKU: "X", Nombre: "X"}

	_, err := uc.GetByID("org2", "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProducto_Parcial(t *testing.T) {
	uc, repo := armarProductos()
	repo.productos["p1"] = &entity.Producto{
		ID: "p1", OrganizacionID: "org1", SKU: "X", Nombre: "Original",
		Descripcion: "queda igual", Estado: "active",
	}

	nombre := "Renombrado"
	out, err := uc.Update("org1", "p1", dto.UpdateProductoRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", out.Nombre)
	assert.Equal(t, "queda igual", out.Descripcion, "los campos no enviados no cambian")
}

func TestUpdateProducto_EstadoInvalido(t *testing.T) {
	uc, repo := armarProductos()
	repo.productos["p1"] = &entity.Producto{ID: "p1", OrganizacionID: "org1", SKU: "X", Nombre: "X"}

	estado := "archivado"
	_, err := uc.Update("org1", "p1", dto.UpdateProductoRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteProducto(t *testing.T) {
	uc, repo := armarProductos()
	repo.productos["p1"] = &entity.Producto{ID: "p1", OrganizacionID: "org1", SKU: "X", Nombre: "X"}

	require.NoError(t, uc.Delete("org1", "p1"))
	assert.Empty(t, repo.productos)

	assert.ErrorIs(t, uc.Delete("org1", "p1"), domain.ErrNotFound)
}

func TestCreateCategoria_NombreRequerido(t *testing.T) {
	repo := &fakeCategoriaRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := usecase.NewCategoriaUseCase(repo, log)

	_, err := uc.Create("org1", dto.CreateCategoriaRequest{Nombre: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create("org1", dto.CreateCategoriaRequest{Nombre: " Panes "})
	require.NoError(t, err)
	assert.Equal(t, "Panes", out.Nombre, "el nombre se guarda sin espacios sobrantes")
	assert.Len(t, repo.categorias, 1)
}

type fakeCategoriaRepo struct {
	categorias []*entity.Categoria
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	f.categorias = append(f.categorias, c)
	return nil
}
func (f *fakeCategoriaRepo) CreateBatch(cs []*entity.Categoria) error {
	f.categorias = append(f.categorias, cs...)
	return nil
}
func (f *fakeCategoriaRepo) ListByOrganizacion(orgID string) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range f.categorias {
		if c.OrganizacionID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCategoriaRepo) Delete(id string) error { return nil }
