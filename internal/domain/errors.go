package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las capas de interfaz los
// traducen a códigos HTTP; la lógica de negocio solo conoce estos sentinelas.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrDuplicate: violación de unicidad (SKU de producto, nombre de marca o categoría).
	ErrDuplicate = errors.New("recurso duplicado")

	// ErrInsufficientStock: la operación dejaría el stock de un producto negativo.
	// Aplica a ventas, reducciones de compra y reversiones sobre stock ya consumido.
	ErrInsufficientStock = errors.New("stock insuficiente")
)
