package repository

import (
	"time"

	"github.com/jfcardenas/inventra/internal/domain/entity"
)

// TransactionFilter filtros de listado de transacciones.
type TransactionFilter struct {
	Kind      string // PURCHASE | SALE | vacío = ambos
	ProductID string
	Search    string // busca en product_name y counterparty_name
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// TransactionRepository define el puerto de persistencia para compras y ventas.
// Las mutaciones se ejecutan siempre dentro de la misma transacción de BD que
// el ajuste de stock correspondiente (ver inventory.TxRunner).
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
	List(filter TransactionFilter) ([]*entity.Transaction, int64, error)
}
