package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Stock inicial es opcional; a partir de ahí solo lo mueve el ledger.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Category    string          `json:"category" validate:"required"`
	Brand       string          `json:"brand" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"dmin=0"`
	Stock       int64           `json:"stock" validate:"min=0"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: lo maneja el ledger).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category"`
	Brand       *string          `json:"brand"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,dmin=0"`
	IsActive    *bool            `json:"is_active"`
}

// ListProductsRequest filtros de GET /api/products.
type ListProductsRequest struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	Brand    string `query:"brand"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	SKU         string          `json:"sku"`
	Code        string          `json:"code"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
