package repository

import "github.com/tu-usuario/sistema-ventas/internal/domain/entity"

// TiendaRepository define el puerto de persistencia para Tienda.
type TiendaRepository interface {
	Create(tienda *entity.Tienda) error
	GetByID(id string) (*entity.Tienda, error)
	Update(tienda *entity.Tienda) error
	List() ([]*entity.Tienda, error)
	Delete(id string) error
	Count() (int64, error)
}
