package repository

import "github.com/techstock/techstock-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	CreateBatch(categorias []*entity.Categoria) error
	ListByOrganizacion(organizacionID string) ([]*entity.Categoria, error)
	Delete(id string) error
}
