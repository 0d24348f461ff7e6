package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario. Una compra entra stock, una venta lo saca.
const (
	KindPurchase = "PURCHASE"
	KindSale     = "SALE"
)

// ValidKind reporta si s es un tipo de transacción conocido.
func ValidKind(s string) bool {
	return s == KindPurchase || s == KindSale
}

// Transaction registro de compra o venta sobre un producto.
// Quantity siempre es positiva; el signo del efecto sobre el stock
// lo determina Kind (ver StockEffect).
type Transaction struct {
	ID               string
	Kind             string // PURCHASE | SALE
	ProductID        string
	ProductName      string // denormalizado para listados y búsqueda
	CounterpartyID   string // proveedor en compras, vendedor en ventas
	CounterpartyName string
	Reference        string // número de comprobante (ventas: MV######)
	Quantity         int64
	Price            decimal.Decimal // precio unitario
	Total            decimal.Decimal // por defecto Quantity * Price
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StockEffect devuelve el delta que esta transacción aplica sobre el stock
// del producto: +Quantity para compras, -Quantity para ventas.
func (t *Transaction) StockEffect() int64 {
	if t.Kind == KindSale {
		return -t.Quantity
	}
	return t.Quantity
}

// DefaultTotal calcula el total por defecto: cantidad por precio unitario.
func DefaultTotal(quantity int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}
