package entity

import "time"

// ProductoTienda representa la asignación de stock de un producto a una
// tienda. El par (TiendaID, ProductoID) es único; StockLocal nunca es
// negativo y sale del stock sin asignar del producto.
type ProductoTienda struct {
	TiendaID   string
	ProductoID string
	StockLocal int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
