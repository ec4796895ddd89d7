package repository

import "github.com/tu-usuario/sistema-ventas/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	GetByRUC(ruc string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	List() ([]*entity.Proveedor, error)
	Delete(id string) error
}
