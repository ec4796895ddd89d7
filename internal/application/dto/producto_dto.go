package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest datos para crear un producto. Stock es la cantidad
// inicial recibida en bodega (entra sin asignar).
type CreateProductoRequest struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Marca       string          `json:"marca"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ProveedorID string          `json:"proveedorId"`
}

// UpdateProductoRequest datos para actualizar un producto. No permite tocar
// Stock ni StockAsignado: las entradas de bodega van por el endpoint
// dedicado de stock y las asignaciones por productos-tienda.
type UpdateProductoRequest struct {
	Codigo      *string          `json:"codigo"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Marca       *string          `json:"marca"`
	Categoria   *string          `json:"categoria"`
	Precio      *decimal.Decimal `json:"precio"`
	Activo      *bool            `json:"activo"`
	ProveedorID *string          `json:"proveedorId"`
}

// IncrementarStockRequest entrada del endpoint PUT /productos/{id}/stock.
// Stock es el delta a sumar a bodega; solo se aceptan valores positivos.
type IncrementarStockRequest struct {
	Stock int `json:"stock"`
}

// ProductoResponse representación de salida de un producto.
// Stock es la cantidad en bodega sin asignar.
type ProductoResponse struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Marca         string          `json:"marca"`
	Categoria     string          `json:"categoria"`
	Precio        decimal.Decimal `json:"precio"`
	Stock         int             `json:"stock"`
	StockAsignado int             `json:"stockAsignado"`
	Activo        bool            `json:"activo"`
	ProveedorID   string          `json:"proveedorId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductoTiendaCatalogoResponse producto visto desde una tienda: el stock
// expuesto es el asignado a esa tienda (lo vendible), no el de bodega.
type ProductoTiendaCatalogoResponse struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
}
