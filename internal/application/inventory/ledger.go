package inventory

import (
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/repository"
)

// Ledger es la única vía de mutación del stock de un producto. Aplica deltas
// con signo sobre el contador products.stock dentro de la transacción de BD
// del caller, con bloqueo de fila para serializar por producto.
type Ledger struct{}

// Apply lee el stock bloqueando la fila (SELECT FOR UPDATE), calcula
// stock + delta y lo persiste. Devuelve el stock resultante.
// Falla con domain.ErrNotFound si el producto no existe y con
// domain.ErrInsufficientStock si el resultado sería negativo; en ese caso
// el stock queda intacto.
//
// productRepo debe estar atado a la transacción en curso: el bloqueo de la
// fila es lo que impide que dos ventas concurrentes pasen la verificación
// contra un stock desactualizado.
func (Ledger) Apply(productRepo repository.ProductRepository, productID string, delta int64) (int64, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	newStock := product.Stock + delta
	if newStock < 0 {
		return 0, domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStock(productID, newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}
