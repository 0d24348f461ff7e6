package repository

import "github.com/jfcardenas/inventra/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Search   string // busca en name y sku
	Category string
	Brand    string
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock es de uso exclusivo del ledger de inventario; el resto del
// código modifica productos solo vía Update (que no toca stock).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar por producto la secuencia leer-verificar-escribir del stock.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int64) error
	List(filter ProductFilter) ([]*entity.Product, int64, error)
	ListLowStock(threshold int64) ([]*entity.Product, error)
	Delete(id string) error
}
