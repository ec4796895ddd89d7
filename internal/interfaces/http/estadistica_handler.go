package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/analytics"
)

// EstadisticaHandler expone los agregados del dashboard.
type EstadisticaHandler struct {
	uc *analytics.DashboardUseCase
}

// NewEstadisticaHandler construye el handler.
func NewEstadisticaHandler(uc *analytics.DashboardUseCase) *EstadisticaHandler {
	return &EstadisticaHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen de estadísticas
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=dto.ResumenEstadisticasResponse}
// @Router       /api/estadisticas/resumen [get]
func (h *EstadisticaHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// VentasPorCategoria godoc
// @Summary      Ventas agrupadas por categoría de producto
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.VentasPorGrupoResponse}
// @Router       /api/estadisticas/ventas/categoria [get]
func (h *EstadisticaHandler) VentasPorCategoria(c *fiber.Ctx) error {
	out, err := h.uc.VentasPorCategoria()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// VentasPorTienda godoc
// @Summary      Ventas agrupadas por tienda
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.VentasPorGrupoResponse}
// @Router       /api/estadisticas/ventas/tienda [get]
func (h *EstadisticaHandler) VentasPorTienda(c *fiber.Ctx) error {
	out, err := h.uc.VentasPorTienda()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// VentasMensuales godoc
// @Summary      Ventas agrupadas por mes
// @Tags         estadisticas
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.VentasPorGrupoResponse}
// @Router       /api/estadisticas/ventas/mensual [get]
func (h *EstadisticaHandler) VentasMensuales(c *fiber.Ctx) error {
	out, err := h.uc.VentasMensuales()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
