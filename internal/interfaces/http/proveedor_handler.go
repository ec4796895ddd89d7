package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/application/usecase"
)

// ProveedorHandler maneja las peticiones HTTP para Proveedor.
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProveedorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.Respuesta{data=dto.ProveedorResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      409   {object}  dto.Respuesta
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if !usecase.ValidarRUC(in.RUC) {
		return validationError(c, []dto.ErrorValidacion{
			{Field: "ruc", Message: "el RUC debe tener exactamente 13 dígitos"},
		})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Respuesta{data=dto.ProveedorResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return ok(c, out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=[]dto.ProveedorResponse}
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateProveedorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Respuesta{data=dto.ProveedorResponse}
// @Failure      400   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.RUC != nil && !usecase.ValidarRUC(*in.RUC) {
		return validationError(c, []dto.ErrorValidacion{
			{Field: "ruc", Message: "el RUC debe tener exactamente 13 dígitos"},
		})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "proveedor no encontrado")
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         proveedores
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
