package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/analytics"
	"github.com/tu-usuario/sistema-ventas/internal/application/asignacion"
	"github.com/tu-usuario/sistema-ventas/internal/application/usecase"
	"github.com/tu-usuario/sistema-ventas/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TiendaUC     *usecase.TiendaUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	ClienteUC    *usecase.ClienteUseCase
	ProductoUC   *usecase.ProductoUseCase
	AsignacionUC *asignacion.UseCase
	VentasUC     *ventas.UseCase
	DashboardUC  *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	// Tiendas
	tiendas := api.Group("/tiendas")
	tiendaHandler := NewTiendaHandler(deps.TiendaUC)
	tiendas.Get("/", tiendaHandler.List)
	tiendas.Post("/", tiendaHandler.Create)
	tiendas.Get("/:id", tiendaHandler.GetByID)
	tiendas.Put("/:id", tiendaHandler.Update)
	tiendas.Delete("/:id", tiendaHandler.Delete)

	// Proveedores
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Productos (las rutas literales van antes que /:id)
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/bajo-stock", productoHandler.ListBajoStock)
	productos.Get("/tienda/:tiendaId", productoHandler.ListPorTienda)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Put("/:id/stock", productoHandler.IncrementarStock)
	productos.Delete("/:id", productoHandler.Delete)

	// Asignaciones producto-tienda
	pt := api.Group("/productos-tienda")
	ptHandler := NewProductoTiendaHandler(deps.AsignacionUC)
	pt.Post("/", ptHandler.Asignar)
	pt.Get("/tienda/:tiendaId", ptHandler.ListPorTienda)
	pt.Get("/:tiendaId/bajo-stock", ptHandler.ListBajoStock)
	pt.Put("/:tiendaId/:productoId", ptHandler.ActualizarStock)
	pt.Delete("/:tiendaId/:productoId", ptHandler.Eliminar)

	// Ventas
	ventasGroup := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentasUC)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/por-fecha", ventaHandler.ListPorFecha)
	ventasGroup.Get("/por-tienda/:tiendaId", ventaHandler.ListPorTienda)
	ventasGroup.Get("/:id", ventaHandler.GetByID)

	// Estadísticas
	estadisticas := api.Group("/estadisticas")
	estadisticaHandler := NewEstadisticaHandler(deps.DashboardUC)
	estadisticas.Get("/resumen", estadisticaHandler.Resumen)
	estadisticas.Get("/ventas/categoria", estadisticaHandler.VentasPorCategoria)
	estadisticas.Get("/ventas/tienda", estadisticaHandler.VentasPorTienda)
	estadisticas.Get("/ventas/mensual", estadisticaHandler.VentasMensuales)
}
