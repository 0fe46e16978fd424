package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrReferenceNotFound = errors.New("referencia no encontrada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidPayment    = errors.New("pago inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAlreadyConfirmed  = errors.New("orden ya confirmada")
)

// InsufficientStockError indica qué artículo y bodega fallaron la verificación de stock.
// Unwrap devuelve ErrInsufficientStock para que errors.Is siga funcionando en los handlers.
type InsufficientStockError struct {
	ItemID      string // producto o recurso según el flujo
	WarehouseID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: artículo %s en bodega %s", e.ItemID, e.WarehouseID)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
