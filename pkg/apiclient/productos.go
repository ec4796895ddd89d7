package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// ProductoInput datos para crear o actualizar un producto. En updates el
// servidor ignora Stock: las entradas de bodega van por ActualizarStock.
type ProductoInput struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Marca       string          `json:"marca"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ProveedorID string          `json:"proveedorId,omitempty"`
}

// Productos cliente del recurso /productos.
type Productos struct {
	g *Gateway
}

// Listar lista el catálogo general.
func (c *Productos) Listar(ctx context.Context) ([]Producto, error) {
	return resolver[[]Producto](c.g.Do(ctx, http.MethodGet, "/productos", nil))
}

// Obtener obtiene un producto por ID.
func (c *Productos) Obtener(ctx context.Context, id string) (Producto, error) {
	return resolver[Producto](c.g.Do(ctx, http.MethodGet, "/productos/"+id, nil))
}

// Crear crea un producto.
func (c *Productos) Crear(ctx context.Context, in ProductoInput) (Producto, error) {
	return resolver[Producto](c.g.Do(ctx, http.MethodPost, "/productos", in))
}

// Actualizar actualiza los datos descriptivos de un producto.
func (c *Productos) Actualizar(ctx context.Context, id string, in ProductoInput) (Producto, error) {
	return resolver[Producto](c.g.Do(ctx, http.MethodPut, "/productos/"+id, in))
}

// ActualizarStock suma unidades al stock de bodega (solo incrementos).
func (c *Productos) ActualizarStock(ctx context.Context, id string, delta int) (Producto, error) {
	body := struct {
		Stock int `json:"stock"`
	}{Stock: delta}
	return resolver[Producto](c.g.Do(ctx, http.MethodPut, "/productos/"+id+"/stock", body))
}

// PorTienda lista los productos asignados a una tienda con su stock local.
func (c *Productos) PorTienda(ctx context.Context, tiendaID string) ([]ProductoCatalogo, error) {
	return resolver[[]ProductoCatalogo](c.g.Do(ctx, http.MethodGet, "/productos/tienda/"+tiendaID, nil))
}

// BajoStock lista los productos con stock de bodega bajo el umbral.
func (c *Productos) BajoStock(ctx context.Context) ([]Producto, error) {
	return resolver[[]Producto](c.g.Do(ctx, http.MethodGet, "/productos/bajo-stock", nil))
}

// Eliminar elimina un producto.
func (c *Productos) Eliminar(ctx context.Context, id string) error {
	return resolverVacio(c.g.Do(ctx, http.MethodDelete, "/productos/"+id, nil))
}
