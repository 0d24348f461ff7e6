package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcardenas/inventra/internal/application/inventory"
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/entity"
)

const testProductID = "00000000-0000-0000-0000-0000000000aa"

func seedProduct(s *memStore, stock int64) {
	now := time.Now()
	s.products[testProductID] = &entity.Product{
		ID:        testProductID,
		Name:      "Teclado mecánico",
		Category:  "Periféricos",
		Brand:     "Redragon",
		Price:     decimal.NewFromInt(120),
		Stock:     stock,
		SKU:       "TEC-001",
		Code:      entity.NewProductCode(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger.Apply — único camino de mutación del stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_DeltaPositivoSumaStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	repo := &memProductRepo{s: store}

	var ledger inventory.Ledger
	stock, err := ledger.Apply(repo, testProductID, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(15), stock)
	assert.Equal(t, int64(15), store.products[testProductID].Stock,
		"el stock persistido debe reflejar el delta aplicado")
}

func TestLedger_DeltaNegativoDescuentaStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	repo := &memProductRepo{s: store}

	var ledger inventory.Ledger
	stock, err := ledger.Apply(repo, testProductID, -4)

	require.NoError(t, err)
	assert.Equal(t, int64(6), stock)
}

func TestLedger_DeltaHastaCeroEsValido(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 7)
	repo := &memProductRepo{s: store}

	var ledger inventory.Ledger
	stock, err := ledger.Apply(repo, testProductID, -7)

	require.NoError(t, err)
	assert.Equal(t, int64(0), stock, "descontar exactamente el stock disponible debe dejar 0")
}

func TestLedger_StockNegativoRechazado(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 3)
	repo := &memProductRepo{s: store}

	var ledger inventory.Ledger
	_, err := ledger.Apply(repo, testProductID, -4)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), store.products[testProductID].Stock,
		"un delta rechazado no debe modificar el stock")
}

func TestLedger_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	repo := &memProductRepo{s: store}

	var ledger inventory.Ledger
	_, err := ledger.Apply(repo, "no-existe", 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
