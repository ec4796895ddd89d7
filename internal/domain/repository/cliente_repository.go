package repository

import "github.com/tu-usuario/sistema-ventas/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByIdentificacion(identificacion string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	List() ([]*entity.Cliente, error)
	Delete(id string) error
	Count() (int64, error)
}
