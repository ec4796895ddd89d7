package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// VentaInput datos para registrar una venta. El total lo calcula el
// servidor a partir de los detalles.
type VentaInput struct {
	ClienteID string         `json:"clienteId"`
	TiendaID  string         `json:"tiendaId"`
	Detalles  []DetalleVenta `json:"detalles"`
}

// Ventas cliente del recurso /ventas.
type Ventas struct {
	g *Gateway
}

// Listar lista todas las ventas.
func (c *Ventas) Listar(ctx context.Context) ([]Venta, error) {
	return resolver[[]Venta](c.g.Do(ctx, http.MethodGet, "/ventas", nil))
}

// Obtener obtiene una venta por ID.
func (c *Ventas) Obtener(ctx context.Context, id string) (Venta, error) {
	return resolver[Venta](c.g.Do(ctx, http.MethodGet, "/ventas/"+id, nil))
}

// Crear registra una venta.
func (c *Ventas) Crear(ctx context.Context, in VentaInput) (Venta, error) {
	return resolver[Venta](c.g.Do(ctx, http.MethodPost, "/ventas", in))
}

// PorFecha lista las ventas dentro del rango de fechas (inclusive).
func (c *Ventas) PorFecha(ctx context.Context, inicio, fin time.Time) ([]Venta, error) {
	q := url.Values{}
	q.Set("fechaInicio", inicio.Format("2006-01-02"))
	q.Set("fechaFin", fin.Format("2006-01-02"))
	return resolver[[]Venta](c.g.Do(ctx, http.MethodGet, "/ventas/por-fecha?"+q.Encode(), nil))
}

// PorTienda lista las ventas de una tienda.
func (c *Ventas) PorTienda(ctx context.Context, tiendaID string) ([]Venta, error) {
	return resolver[[]Venta](c.g.Do(ctx, http.MethodGet, "/ventas/por-tienda/"+tiendaID, nil))
}
