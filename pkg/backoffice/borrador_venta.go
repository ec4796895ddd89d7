package backoffice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistema-ventas/pkg/apiclient"
)

// Errores de validación local del borrador de venta.
var (
	ErrSinCliente        = errors.New("seleccione un cliente")
	ErrLineaFueraDeRango = errors.New("línea inexistente")
	ErrLineaIncompleta   = errors.New("todas las líneas deben tener producto y cantidad")
	ErrStockLocalExcede  = errors.New("la cantidad excede el stock disponible en la tienda")
)

// Linea línea del borrador: producto elegido, cantidad y el precio
// unitario congelado al seleccionar el producto.
type Linea struct {
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// EstadoBorrador instantánea del borrador de venta.
type EstadoBorrador struct {
	TiendaID  string
	ClienteID string
	Catalogo  []apiclient.ProductoCatalogo
	Lineas    []Linea
	Ventas    []apiclient.Venta
}

// BorradorVenta motor de la pantalla de registro de ventas. Compone la
// venta línea a línea contra el catálogo de la tienda seleccionada y la
// envía completa al API.
type BorradorVenta struct {
	api    *apiclient.Client
	estado EstadoBorrador
}

// NewBorradorVenta construye el motor con el borrador vacío.
func NewBorradorVenta(api *apiclient.Client) *BorradorVenta {
	return &BorradorVenta{api: api, estado: EstadoBorrador{Lineas: []Linea{{}}}}
}

// Cargar trae las ventas registradas. Se llama al entrar a la pantalla.
func (b *BorradorVenta) Cargar(ctx context.Context) error {
	ventas, err := b.api.Ventas.Listar(ctx)
	if err != nil {
		return err
	}
	b.estado.Ventas = ventas
	return nil
}

// Estado devuelve la instantánea vigente con las listas copiadas.
func (b *BorradorVenta) Estado() EstadoBorrador {
	out := b.estado
	out.Catalogo = append([]apiclient.ProductoCatalogo(nil), b.estado.Catalogo...)
	out.Lineas = append([]Linea(nil), b.estado.Lineas...)
	out.Ventas = append([]apiclient.Venta(nil), b.estado.Ventas...)
	return out
}

// SetTienda fija la tienda de la venta: carga su catálogo y reinicia el
// borrador a una única línea vacía. Si la carga falla, nada cambia.
func (b *BorradorVenta) SetTienda(ctx context.Context, tiendaID string) error {
	catalogo, err := b.api.Productos.PorTienda(ctx, tiendaID)
	if err != nil {
		return err
	}
	b.estado.TiendaID = tiendaID
	b.estado.Catalogo = catalogo
	b.estado.Lineas = []Linea{{}}
	return nil
}

// SetCliente fija el cliente de la venta.
func (b *BorradorVenta) SetCliente(clienteID string) {
	b.estado.ClienteID = clienteID
}

// SetLineaProducto elige el producto de la línea i y congela su precio.
// Si la cantidad ya escrita excede el stock del nuevo producto la
// selección se rechaza; nunca se recorta en silencio.
func (b *BorradorVenta) SetLineaProducto(i int, productoID string) error {
	if i < 0 || i >= len(b.estado.Lineas) {
		return ErrLineaFueraDeRango
	}
	producto, ok := b.enCatalogo(productoID)
	if !ok {
		return ErrProductoNoElegible
	}
	if b.estado.Lineas[i].Cantidad > producto.Stock {
		return ErrStockLocalExcede
	}
	b.estado.Lineas[i].ProductoID = productoID
	b.estado.Lineas[i].PrecioUnitario = producto.Precio
	return nil
}

// SetLineaCantidad fija la cantidad de la línea i, acotada por el stock
// local del producto elegido.
func (b *BorradorVenta) SetLineaCantidad(i, cantidad int) error {
	if i < 0 || i >= len(b.estado.Lineas) {
		return ErrLineaFueraDeRango
	}
	if cantidad < 1 {
		return ErrCantidadInvalida
	}
	if id := b.estado.Lineas[i].ProductoID; id != "" {
		producto, ok := b.enCatalogo(id)
		if !ok {
			return ErrProductoNoElegible
		}
		if cantidad > producto.Stock {
			return ErrStockLocalExcede
		}
	}
	b.estado.Lineas[i].Cantidad = cantidad
	return nil
}

// AgregarLinea añade una línea vacía al final.
func (b *BorradorVenta) AgregarLinea() {
	b.estado.Lineas = append(b.estado.Lineas, Linea{})
}

// EliminarLinea quita la línea i. Quitar la única línea no hace nada:
// el borrador siempre tiene al menos una.
func (b *BorradorVenta) EliminarLinea(i int) {
	if len(b.estado.Lineas) <= 1 || i < 0 || i >= len(b.estado.Lineas) {
		return
	}
	b.estado.Lineas = append(b.estado.Lineas[:i:i], b.estado.Lineas[i+1:]...)
}

// Total suma cantidad × precio unitario de las líneas completas,
// redondeado a dos decimales.
func (b *BorradorVenta) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.estado.Lineas {
		if l.ProductoID == "" || l.Cantidad < 1 {
			continue
		}
		total = total.Add(l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad))))
	}
	return total.Round(2)
}

// Enviar registra la venta. Con éxito reinicia el borrador (manteniendo
// la tienda y su catálogo) y recarga las ventas; con fallo devuelve el
// mensaje del servidor tal cual y el borrador queda intacto.
func (b *BorradorVenta) Enviar(ctx context.Context) (apiclient.Venta, error) {
	if b.estado.TiendaID == "" {
		return apiclient.Venta{}, ErrSinTienda
	}
	if b.estado.ClienteID == "" {
		return apiclient.Venta{}, ErrSinCliente
	}
	detalles := make([]apiclient.DetalleVenta, 0, len(b.estado.Lineas))
	for _, l := range b.estado.Lineas {
		if l.ProductoID == "" || l.Cantidad < 1 {
			return apiclient.Venta{}, ErrLineaIncompleta
		}
		detalles = append(detalles, apiclient.DetalleVenta{
			ProductoID:     l.ProductoID,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
		})
	}
	venta, err := b.api.Ventas.Crear(ctx, apiclient.VentaInput{
		ClienteID: b.estado.ClienteID,
		TiendaID:  b.estado.TiendaID,
		Detalles:  detalles,
	})
	if err != nil {
		return apiclient.Venta{}, err
	}

	b.estado.ClienteID = ""
	b.estado.Lineas = []Linea{{}}
	// El stock local cambió con la venta: recargar catálogo y listado.
	if catalogo, err := b.api.Productos.PorTienda(ctx, b.estado.TiendaID); err == nil {
		b.estado.Catalogo = catalogo
	}
	if ventas, err := b.api.Ventas.Listar(ctx); err == nil {
		b.estado.Ventas = ventas
	}
	return venta, nil
}

func (b *BorradorVenta) enCatalogo(productoID string) (apiclient.ProductoCatalogo, bool) {
	for _, p := range b.estado.Catalogo {
		if p.ID == productoID {
			return p, true
		}
	}
	return apiclient.ProductoCatalogo{}, false
}
