package inventory

import (
	"context"

	"github.com/jfcardenas/inventra/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el registro de compra/venta y
// el ajuste de stock se confirmen o reviertan juntos: nunca queda un
// registro sin su ajuste ni un ajuste sin su registro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// StockPublisher notifica cambios de stock ya confirmados (post-commit).
// Implementado por el hub de websockets; puede ser nil en tests o CLI.
type StockPublisher interface {
	PublishStockChanged(productID string, stock int64)
}
