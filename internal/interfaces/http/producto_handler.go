package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/application/usecase"
)

const umbralStockBajo = 10

// ProductoHandler maneja las peticiones HTTP para Producto.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return ok(c, out)
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.ProductoResponse}
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return ok(c, out)
}

// IncrementarStock godoc
// @Summary      Incrementar stock de bodega
// @Description  Suma unidades al stock sin asignar. Solo acepta deltas positivos.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.IncrementarStockRequest  true  "Unidades a sumar"
// @Success      200   {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id}/stock [put]
func (h *ProductoHandler) IncrementarStock(c *fiber.Ctx) error {
	var in dto.IncrementarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.IncrementarStock(c.Params("id"), in.Stock)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return ok(c, out)
}

// ListPorTienda godoc
// @Summary      Listar productos asignados a una tienda
// @Description  El stock de cada producto es el asignado a la tienda (lo vendible).
// @Tags         productos
// @Produce      json
// @Param        tiendaId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.Respuesta{data=[]dto.ProductoTiendaCatalogoResponse}
// @Router       /api/productos/tienda/{tiendaId} [get]
func (h *ProductoHandler) ListPorTienda(c *fiber.Ctx) error {
	out, err := h.uc.ListPorTienda(c.Params("tiendaId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// ListBajoStock godoc
// @Summary      Listar productos con stock bajo en bodega
// @Tags         productos
// @Produce      json
// @Param        stockMinimo  query  int  false  "Umbral"  default(10)
// @Success      200  {object}  dto.Respuesta{data=[]dto.ProductoResponse}
// @Router       /api/productos/bajo-stock [get]
func (h *ProductoHandler) ListBajoStock(c *fiber.Ctx) error {
	out, err := h.uc.ListBajoStock(c.QueryInt("stockMinimo", umbralStockBajo))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
