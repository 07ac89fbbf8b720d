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

// CategoriaUseCase operaciones sobre categorías de una organización.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
	log           *logger.Logger
}

// NewCategoriaUseCase construye el caso de uso de categorías.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository, log *logger.Logger) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo, log: log}
}

// Create crea una categoría en la organización.
func (uc *CategoriaUseCase) Create(organizacionID string, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.Categoria{
		ID:             uuid.New().String(),
		OrganizacionID: organizacionID,
		Nombre:         nombre,
		CreatedAt:      time.Now(),
	}
	if err := uc.categoriaRepo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// List lista las categorías de la organización.
func (uc *CategoriaUseCase) List(organizacionID string) ([]*dto.CategoriaResponse, error) {
	categorias, err := uc.categoriaRepo.ListByOrganizacion(organizacionID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt}
}
