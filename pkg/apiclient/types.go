package apiclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas del API tal como viajan en el campo data del sobre. El SDK no
// adivina campos: cada recurso decodifica hacia su tipo nombrado.

// Tienda sucursal o local de venta.
type Tienda struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Direccion     string    `json:"direccion"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	Administrador string    `json:"administrador"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Proveedor proveedor de mercadería. RUC de exactamente 13 dígitos.
type Proveedor struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	RUC       string    `json:"ruc"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Cliente comprador registrado.
type Cliente struct {
	ID             string    `json:"id"`
	Nombre         string    `json:"nombre"`
	Identificacion string    `json:"identificacion"`
	Direccion      string    `json:"direccion"`
	Telefono       string    `json:"telefono"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Producto artículo del catálogo general. Stock es lo que queda en bodega
// sin asignar; StockAsignado lo repartido entre tiendas.
type Producto struct {
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

// ProductoCatalogo producto visto desde una tienda: Stock es el stock
// local asignado (lo vendible en esa tienda).
type ProductoCatalogo struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
}

// ProductoTienda asignación de stock de un producto a una tienda, con
// datos denormalizados para listados.
type ProductoTienda struct {
	TiendaID       string          `json:"tiendaId"`
	ProductoID     string          `json:"productoId"`
	Stock          int             `json:"stock"`
	NombreProducto string          `json:"nombreProducto"`
	CodigoProducto string          `json:"codigoProducto"`
	PrecioProducto decimal.Decimal `json:"precioProducto"`
	NombreTienda   string          `json:"nombreTienda"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// DetalleVenta línea de una venta.
type DetalleVenta struct {
	ProductoID     string          `json:"productoId"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// Venta venta registrada.
type Venta struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"clienteId"`
	NombreCliente string          `json:"nombreCliente,omitempty"`
	TiendaID      string          `json:"tiendaId"`
	NombreTienda  string          `json:"nombreTienda,omitempty"`
	FechaVenta    time.Time       `json:"fechaVenta"`
	PrecioTotal   decimal.Decimal `json:"precioTotal"`
	Detalles      []DetalleVenta  `json:"detalles"`
}

// ResumenEstadisticas tarjetas del dashboard.
type ResumenEstadisticas struct {
	VentasHoy          decimal.Decimal `json:"ventasHoy"`
	VentasSemana       decimal.Decimal `json:"ventasSemana"`
	TotalClientes      int64           `json:"totalClientes"`
	TotalTiendas       int64           `json:"totalTiendas"`
	ProductosStockBajo int             `json:"productosStockBajo"`
	VentasTotales      decimal.Decimal `json:"ventasTotales"`
}

// VentasPorGrupo punto de una gráfica del dashboard.
type VentasPorGrupo struct {
	Grupo string          `json:"grupo"`
	Total decimal.Decimal `json:"total"`
}
