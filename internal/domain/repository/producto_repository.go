package repository

import "github.com/tu-usuario/sistema-ventas/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
// Stock y StockAsignado solo se modifican vía UpdateStocks/IncrementStock
// para que el motor de asignación mantenga sus invariantes.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE); usar dentro de una tx.
	GetForUpdate(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// UpdateStocks fija stock sin asignar y stock asignado en una sola escritura.
	UpdateStocks(id string, stock, stockAsignado int) error
	// IncrementStock suma delta al stock de bodega (entradas de mercadería).
	IncrementStock(id string, delta int) error
	List() ([]*entity.Producto, error)
	ListBajoStock(stockMinimo int) ([]*entity.Producto, error)
	Delete(id string) error
}
