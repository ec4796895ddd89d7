package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa una venta registrada en una tienda. Los detalles se
// almacenan serializados como JSON (lista de DetalleVenta).
type Venta struct {
	ID          string
	ClienteID   string
	TiendaID    string
	FechaVenta  time.Time
	PrecioTotal decimal.Decimal
	Detalles    json.RawMessage
}

// DetalleVenta es una línea de venta: producto, cantidad y precio unitario
// congelado al momento de la venta.
type DetalleVenta struct {
	ProductoID     string          `json:"productoId"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}
