package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/application/ventas"
)

// VentaHandler maneja las peticiones HTTP para Venta.
type VentaHandler struct {
	uc *ventas.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Calcula el total en el servidor y descuenta el stock local de cada línea en una transacción.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Venta"
// @Success      201   {object}  dto.Respuesta{data=dto.VentaResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Registrar(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Respuesta{data=dto.VentaResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "venta no encontrada")
	}
	return ok(c, out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.VentaResponse}
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// ListPorFecha godoc
// @Summary      Listar ventas por rango de fechas
// @Tags         ventas
// @Produce      json
// @Param        fechaInicio  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        fechaFin     query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.Respuesta{data=[]dto.VentaResponse}
// @Failure      400  {object}  dto.Respuesta
// @Router       /api/ventas/por-fecha [get]
func (h *VentaHandler) ListPorFecha(c *fiber.Ctx) error {
	inicio, err := time.Parse("2006-01-02", c.Query("fechaInicio"))
	if err != nil {
		return badRequest(c, "fechaInicio inválida, formato esperado YYYY-MM-DD")
	}
	fin, err := time.Parse("2006-01-02", c.Query("fechaFin"))
	if err != nil {
		return badRequest(c, "fechaFin inválida, formato esperado YYYY-MM-DD")
	}
	// El rango es inclusivo: el día final cuenta completo.
	fin = fin.Add(24*time.Hour - time.Nanosecond)
	out, err := h.uc.ListPorFecha(inicio, fin)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// ListPorTienda godoc
// @Summary      Listar ventas de una tienda
// @Tags         ventas
// @Produce      json
// @Param        tiendaId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.Respuesta{data=[]dto.VentaResponse}
// @Router       /api/ventas/por-tienda/{tiendaId} [get]
func (h *VentaHandler) ListPorTienda(c *fiber.Ctx) error {
	out, err := h.uc.ListPorTienda(c.Params("tiendaId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
