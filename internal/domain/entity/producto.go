package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo general.
// Stock es la cantidad en bodega SIN asignar a ninguna tienda; StockAsignado
// es la suma de las asignaciones por tienda (ProductoTienda). La cantidad
// total recibida alguna vez es Stock + StockAsignado + lo ya vendido.
type Producto struct {
	ID            string
	Codigo        string // único
	Nombre        string
	Descripcion   string
	Marca         string
	Categoria     string
	Precio        decimal.Decimal
	Stock         int // bodega sin asignar
	StockAsignado int // suma de StockLocal en tiendas
	Activo        bool
	ProveedorID   string // opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
