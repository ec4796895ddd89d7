package repository

import "github.com/tu-usuario/sistema-ventas/internal/domain/entity"

// ProductoTiendaRepository define el puerto de persistencia para las
// asignaciones de stock por tienda (par único tienda+producto).
type ProductoTiendaRepository interface {
	Get(tiendaID, productoID string) (*entity.ProductoTienda, error)
	// GetForUpdate bloquea la fila de la asignación; usar dentro de una tx.
	GetForUpdate(tiendaID, productoID string) (*entity.ProductoTienda, error)
	ListByTienda(tiendaID string) ([]*entity.ProductoTienda, error)
	ListBajoStock(tiendaID string, stockMinimo int) ([]*entity.ProductoTienda, error)
	Create(pt *entity.ProductoTienda) error
	UpdateStockLocal(tiendaID, productoID string, stockLocal int) error
	Delete(tiendaID, productoID string) error
}
