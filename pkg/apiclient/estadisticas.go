package apiclient

import (
	"context"
	"net/http"
)

// Estadisticas cliente del recurso /estadisticas.
type Estadisticas struct {
	g *Gateway
}

// Resumen obtiene las tarjetas del dashboard.
func (c *Estadisticas) Resumen(ctx context.Context) (ResumenEstadisticas, error) {
	return resolver[ResumenEstadisticas](c.g.Do(ctx, http.MethodGet, "/estadisticas/resumen", nil))
}

// VentasPorCategoria obtiene las ventas agrupadas por categoría.
func (c *Estadisticas) VentasPorCategoria(ctx context.Context) ([]VentasPorGrupo, error) {
	return resolver[[]VentasPorGrupo](c.g.Do(ctx, http.MethodGet, "/estadisticas/ventas/categoria", nil))
}

// VentasPorTienda obtiene las ventas agrupadas por tienda.
func (c *Estadisticas) VentasPorTienda(ctx context.Context) ([]VentasPorGrupo, error) {
	return resolver[[]VentasPorGrupo](c.g.Do(ctx, http.MethodGet, "/estadisticas/ventas/tienda", nil))
}

// VentasMensuales obtiene las ventas agrupadas por mes.
func (c *Estadisticas) VentasMensuales(ctx context.Context) ([]VentasPorGrupo, error) {
	return resolver[[]VentasPorGrupo](c.g.Do(ctx, http.MethodGet, "/estadisticas/ventas/mensual", nil))
}
