package repository

import (
	"time"

	"github.com/tu-usuario/sistema-ventas/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	List() ([]*entity.Venta, error)
	ListPorFecha(inicio, fin time.Time) ([]*entity.Venta, error)
	ListPorTienda(tiendaID string) ([]*entity.Venta, error)
}
