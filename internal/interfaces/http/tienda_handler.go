package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/application/usecase"
)

// TiendaHandler maneja las peticiones HTTP para Tienda.
type TiendaHandler struct {
	uc *usecase.TiendaUseCase
}

// NewTiendaHandler construye el handler.
func NewTiendaHandler(uc *usecase.TiendaUseCase) *TiendaHandler {
	return &TiendaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         tiendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTiendaRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.Respuesta{data=dto.TiendaResponse}
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/tiendas [post]
func (h *TiendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTiendaRequest
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
// @Summary      Obtener tienda por ID
// @Tags         tiendas
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.Respuesta{data=dto.TiendaResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/tiendas/{id} [get]
func (h *TiendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "tienda no encontrada")
	}
	return ok(c, out)
}

// List godoc
// @Summary      Listar tiendas
// @Tags         tiendas
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.TiendaResponse}
// @Router       /api/tiendas [get]
func (h *TiendaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar tienda
// @Tags         tiendas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tienda"
// @Param        body  body  dto.UpdateTiendaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Respuesta{data=dto.TiendaResponse}
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/tiendas/{id} [put]
func (h *TiendaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTiendaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "tienda no encontrada")
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Eliminar tienda
// @Tags         tiendas
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/tiendas/{id} [delete]
func (h *TiendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
