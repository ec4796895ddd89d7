package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

// AsignacionInput datos para asignar stock de un producto a una tienda.
type AsignacionInput struct {
	TiendaID   string `json:"tiendaId"`
	ProductoID string `json:"productoId"`
	Stock      int    `json:"stock"`
}

// ProductosTienda cliente del recurso /productos-tienda.
type ProductosTienda struct {
	g *Gateway
}

// PorTienda lista las asignaciones de una tienda.
func (c *ProductosTienda) PorTienda(ctx context.Context, tiendaID string) ([]ProductoTienda, error) {
	return resolver[[]ProductoTienda](c.g.Do(ctx, http.MethodGet, "/productos-tienda/tienda/"+tiendaID, nil))
}

// BajoStock lista las asignaciones de la tienda con stock local bajo.
func (c *ProductosTienda) BajoStock(ctx context.Context, tiendaID string) ([]ProductoTienda, error) {
	return resolver[[]ProductoTienda](c.g.Do(ctx, http.MethodGet, "/productos-tienda/"+tiendaID+"/bajo-stock", nil))
}

// Asignar asigna stock de bodega a una tienda.
func (c *ProductosTienda) Asignar(ctx context.Context, in AsignacionInput) (ProductoTienda, error) {
	return resolver[ProductoTienda](c.g.Do(ctx, http.MethodPost, "/productos-tienda", in))
}

// ActualizarStock fija el stock local de la asignación en cantidad; el
// servidor mueve la diferencia desde o hacia bodega.
func (c *ProductosTienda) ActualizarStock(ctx context.Context, tiendaID, productoID string, cantidad int) (ProductoTienda, error) {
	path := "/productos-tienda/" + tiendaID + "/" + productoID + "?cantidad=" + strconv.Itoa(cantidad)
	return resolver[ProductoTienda](c.g.Do(ctx, http.MethodPut, path, nil))
}

// Eliminar quita el producto de la tienda y devuelve su stock a bodega.
func (c *ProductosTienda) Eliminar(ctx context.Context, tiendaID, productoID string) error {
	return resolverVacio(c.g.Do(ctx, http.MethodDelete, "/productos-tienda/"+tiendaID+"/"+productoID, nil))
}
