package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrStockInsuficiente  = errors.New("no hay suficiente stock disponible")
	ErrStockTiendaExcede  = errors.New("no hay suficiente stock en la tienda")
	ErrYaAsignado         = errors.New("el producto ya está asignado a esta tienda")
	ErrNoAsignado         = errors.New("el producto no está asignado a esta tienda")
	ErrClienteNoExiste    = errors.New("cliente no encontrado")
	ErrTiendaNoExiste     = errors.New("tienda no encontrada")
	ErrProductoNoExiste   = errors.New("producto no encontrado")
)
