package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Stock es un contador entero no negativo;
// solo el ledger de inventario lo modifica (vía movimientos de compra/venta
// o ajustes administrativos), nunca el CRUD de productos.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Brand       string
	Price       decimal.Decimal
	Stock       int64
	SKU         string
	Code        string // código interno generado: #####-AAAA
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
