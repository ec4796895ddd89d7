package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVentaRequest entrada de POST /ventas. El total NO viaja en el
// request: se calcula en el servidor a partir de los detalles.
type CreateVentaRequest struct {
	ClienteID string                `json:"clienteId"`
	TiendaID  string                `json:"tiendaId"`
	Detalles  []DetalleVentaRequest `json:"detalles"`
}

// DetalleVentaRequest una línea de la venta.
type DetalleVentaRequest struct {
	ProductoID     string          `json:"productoId"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// VentaResponse representación de salida de una venta, con nombres
// denormalizados para listados.
type VentaResponse struct {
	ID            string                `json:"id"`
	ClienteID     string                `json:"clienteId"`
	NombreCliente string                `json:"nombreCliente,omitempty"`
	TiendaID      string                `json:"tiendaId"`
	NombreTienda  string                `json:"nombreTienda,omitempty"`
	FechaVenta    time.Time             `json:"fechaVenta"`
	PrecioTotal   decimal.Decimal       `json:"precioTotal"`
	Detalles      []DetalleVentaRequest `json:"detalles"`
}
