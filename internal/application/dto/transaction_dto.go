package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/purchases y POST /api/sales.
// Total es opcional: si se omite se calcula quantity * price.
type CreateTransactionRequest struct {
	ProductID        string           `json:"product_id" validate:"required,uuid4"`
	CounterpartyID   string           `json:"counterparty_id"`
	CounterpartyName string           `json:"counterparty_name" validate:"max=100"`
	Quantity         int64            `json:"quantity" validate:"required,min=1"`
	Price            decimal.Decimal  `json:"price" validate:"dmin=0"`
	Total            *decimal.Decimal `json:"total,omitempty"`
}

// UpdateTransactionRequest body para PUT /api/purchases/:id y /api/sales/:id.
// Campos nil se conservan. Si cambian Quantity o Price y no se envía Total,
// el total se recalcula.
type UpdateTransactionRequest struct {
	CounterpartyID   *string          `json:"counterparty_id"`
	CounterpartyName *string          `json:"counterparty_name" validate:"omitempty,max=100"`
	Quantity         *int64           `json:"quantity" validate:"omitempty,min=1"`
	Price            *decimal.Decimal `json:"price" validate:"omitempty,dmin=0"`
	Total            *decimal.Decimal `json:"total,omitempty"`
}

// ListTransactionsRequest filtros de GET /api/purchases y /api/sales.
type ListTransactionsRequest struct {
	PageRequest
	Search    string `query:"search"`
	ProductID string `query:"product_id"`
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`
}

// TransactionResponse salida de una transacción con el stock resultante.
type TransactionResponse struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	CounterpartyID   string          `json:"counterparty_id,omitempty"`
	CounterpartyName string          `json:"counterparty_name,omitempty"`
	Reference        string          `json:"reference,omitempty"`
	Quantity         int64           `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Total            decimal.Decimal `json:"total"`
	StockAfter       *int64          `json:"stock_after,omitempty"` // solo en mutaciones
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// AdjustStockRequest body para POST /api/products/:id/stock (corrección administrativa).
type AdjustStockRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// AdjustStockResponse stock resultante tras el ajuste.
type AdjustStockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int64  `json:"stock"`
}
