package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sistema-ventas/internal/application/dto"
	"github.com/tu-usuario/sistema-ventas/internal/domain"
)

// ok responde 200 con el sobre de éxito.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.Exito(data))
}

// created responde 201 con el sobre de éxito.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Exito(data))
}

// notFound responde 404 con un mensaje de recurso ausente.
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Error(message))
}

// badRequest responde 400 con un mensaje general.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Error(message))
}

// validationError responde 400 con errores por campo.
func validationError(c *fiber.Ctx, errores []dto.ErrorValidacion) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorDeValidacion(errores))
}

// fail mapea errores de dominio a estado HTTP + sobre. Los mensajes de los
// errores centinela viajan tal cual: el cliente los muestra sin reformular.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrStockInsuficiente),
		errors.Is(err, domain.ErrStockTiendaExcede):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrNoAsignado),
		errors.Is(err, domain.ErrClienteNoExiste),
		errors.Is(err, domain.ErrTiendaNoExiste),
		errors.Is(err, domain.ErrProductoNoExiste):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrYaAsignado):
		return c.Status(fiber.StatusConflict).JSON(dto.Error(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Error interno del servidor"))
	}
}
