package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/asignacion"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
)

// ProductoTiendaHandler maneja las asignaciones de stock producto-tienda.
type ProductoTiendaHandler struct {
	uc *asignacion.UseCase
}

// NewProductoTiendaHandler construye el handler.
func NewProductoTiendaHandler(uc *asignacion.UseCase) *ProductoTiendaHandler {
	return &ProductoTiendaHandler{uc: uc}
}

// Asignar godoc
// @Summary      Asignar producto a tienda
// @Description  Mueve unidades de bodega al stock local de la tienda.
// @Tags         productos-tienda
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignarProductoRequest  true  "Asignación"
// @Success      201   {object}  dto.Respuesta{data=dto.ProductoTiendaResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/productos-tienda [post]
func (h *ProductoTiendaHandler) Asignar(c *fiber.Ctx) error {
	var in dto.AsignarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Asignar(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// ActualizarStock godoc
// @Summary      Fijar el stock local de una asignación
// @Description  cantidad es el NUEVO stock local; la diferencia se mueve desde o hacia bodega.
// @Tags         productos-tienda
// @Produce      json
// @Param        tiendaId    path   string  true  "ID de la tienda"
// @Param        productoId  path   string  true  "ID del producto"
// @Param        cantidad    query  int     true  "Nuevo stock local"
// @Success      200  {object}  dto.Respuesta{data=dto.ProductoTiendaResponse}
// @Failure      400  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos-tienda/{tiendaId}/{productoId} [put]
func (h *ProductoTiendaHandler) ActualizarStock(c *fiber.Ctx) error {
	cantidad := c.QueryInt("cantidad", -1)
	if cantidad < 0 {
		return badRequest(c, "cantidad es requerida y no puede ser negativa")
	}
	out, err := h.uc.ActualizarStockLocal(c.UserContext(), c.Params("tiendaId"), c.Params("productoId"), cantidad)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Eliminar godoc
// @Summary      Quitar producto de tienda
// @Description  Elimina la asignación y devuelve el stock local a bodega.
// @Tags         productos-tienda
// @Produce      json
// @Param        tiendaId    path  string  true  "ID de la tienda"
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos-tienda/{tiendaId}/{productoId} [delete]
func (h *ProductoTiendaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.UserContext(), c.Params("tiendaId"), c.Params("productoId")); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

// ListPorTienda godoc
// @Summary      Listar asignaciones de una tienda
// @Tags         productos-tienda
// @Produce      json
// @Param        tiendaId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.Respuesta{data=[]dto.ProductoTiendaResponse}
// @Router       /api/productos-tienda/tienda/{tiendaId} [get]
func (h *ProductoTiendaHandler) ListPorTienda(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorTienda(c.Params("tiendaId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// ListBajoStock godoc
// @Summary      Listar asignaciones con stock local bajo
// @Tags         productos-tienda
// @Produce      json
// @Param        tiendaId     path   string  true   "ID de la tienda"
// @Param        stockMinimo  query  int     false  "Umbral"  default(10)
// @Success      200  {object}  dto.Respuesta{data=[]dto.ProductoTiendaResponse}
// @Router       /api/productos-tienda/{tiendaId}/bajo-stock [get]
func (h *ProductoTiendaHandler) ListBajoStock(c *fiber.Ctx) error {
	out, err := h.uc.ListarBajoStock(c.Params("tiendaId"), c.QueryInt("stockMinimo", umbralStockBajo))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
