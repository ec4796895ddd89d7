package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AsignarProductoRequest entrada de POST /productos-tienda: asigna Stock
// unidades del producto (tomadas de bodega) a la tienda.
type AsignarProductoRequest struct {
	TiendaID   string `json:"tiendaId"`
	ProductoID string `json:"productoId"`
	Stock      int    `json:"stock"`
}

// ProductoTiendaResponse asignación con datos denormalizados del producto
// y la tienda para mostrar en listados.
type ProductoTiendaResponse struct {
	TiendaID       string          `json:"tiendaId"`
	ProductoID     string          `json:"productoId"`
	Stock          int             `json:"stock"`
	NombreProducto string          `json:"nombreProducto"`
	CodigoProducto string          `json:"codigoProducto"`
	PrecioProducto decimal.Decimal `json:"precioProducto"`
	NombreTienda   string          `json:"nombreTienda"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
