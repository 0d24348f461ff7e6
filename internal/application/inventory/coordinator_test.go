package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcardenas/inventra/internal/application/dto"
	"github.com/jfcardenas/inventra/internal/application/inventory"
	"github.com/jfcardenas/inventra/internal/domain"
	"github.com/jfcardenas/inventra/internal/domain/entity"
)

func newTestCoordinator(store *memStore) (*inventory.TransactionUseCase, *memPublisher) {
	pub := &memPublisher{}
	uc := inventory.NewTransactionUseCase(
		&memTxRunner{s: store},
		&memTransactionRepo{s: store},
		pub,
	)
	return uc, pub
}

func createReq(qty int64, price int64) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		ProductID: testProductID,
		Quantity:  qty,
		Price:     decimal.NewFromInt(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CompraSumaStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, pub := newTestCoordinator(store)

	resp, err := uc.Create(context.Background(), entity.KindPurchase, createReq(5, 20))

	require.NoError(t, err)
	require.NotNil(t, resp.StockAfter)
	assert.Equal(t, int64(15), *resp.StockAfter)
	assert.Equal(t, "Teclado mecánico", resp.ProductName,
		"el nombre del producto se copia al registro")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(100)),
		"total por defecto = cantidad * precio")
	assert.Empty(t, resp.Reference, "las compras no llevan número de comprobante")

	ev, ok := pub.last()
	require.True(t, ok, "toda mutación de stock debe publicar un evento")
	assert.Equal(t, int64(15), ev.Stock)
}

func TestCreate_VentaDescuentaStockYGeneraReferencia(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	resp, err := uc.Create(context.Background(), entity.KindSale, createReq(4, 30))

	require.NoError(t, err)
	require.NotNil(t, resp.StockAfter)
	assert.Equal(t, int64(6), *resp.StockAfter)
	assert.Regexp(t, `^MV\d{6}$`, resp.Reference,
		"las ventas llevan número de comprobante MV + 6 dígitos")
}

func TestCreate_TotalExplicitoSeConserva(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	total := decimal.NewFromInt(25) // distinto de 3*10: descuento pactado
	in := createReq(3, 10)
	in.Total = &total

	resp, err := uc.Create(context.Background(), entity.KindSale, in)

	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(total),
		"un total explícito no se recalcula")
}

func TestCreate_VentaSinStockRechazadaYSinRegistro(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 3)
	uc, _ := newTestCoordinator(store)

	_, err := uc.Create(context.Background(), entity.KindSale, createReq(5, 10))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), store.products[testProductID].Stock,
		"el stock no cambia en una venta rechazada")
	assert.Empty(t, store.txs, "una venta rechazada no deja registro")
}

func TestCreate_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc, _ := newTestCoordinator(store)

	_, err := uc.Create(context.Background(), entity.KindPurchase, createReq(1, 10))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_KindInvalido(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	_, err := uc.Create(context.Background(), "TRANSFER", createReq(1, 10))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — el delta revierte el efecto viejo y aplica el nuevo
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_VentaReduceCantidadDevuelveStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 20)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindSale, createReq(5, 10))
	require.NoError(t, err)
	require.Equal(t, int64(15), store.products[testProductID].Stock)

	newQty := int64(2)
	resp, err := uc.Update(context.Background(), entity.KindSale, created.ID,
		dto.UpdateTransactionRequest{Quantity: &newQty})

	require.NoError(t, err)
	require.NotNil(t, resp.StockAfter)
	assert.Equal(t, int64(18), *resp.StockAfter,
		"vender 2 en vez de 5 devuelve 3 unidades al stock")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(20)),
		"al cambiar la cantidad sin total explícito, el total se recalcula")
}

func TestUpdate_CompraAumentaCantidadSumaDiferencia(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindPurchase, createReq(4, 7))
	require.NoError(t, err)
	require.Equal(t, int64(14), store.products[testProductID].Stock)

	newQty := int64(10)
	resp, err := uc.Update(context.Background(), entity.KindPurchase, created.ID,
		dto.UpdateTransactionRequest{Quantity: &newQty})

	require.NoError(t, err)
	require.NotNil(t, resp.StockAfter)
	assert.Equal(t, int64(20), *resp.StockAfter)
}

func TestUpdate_SinCambioDeCantidadNoTocaStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindSale, createReq(2, 10))
	require.NoError(t, err)

	name := "Cliente Nuevo"
	resp, err := uc.Update(context.Background(), entity.KindSale, created.ID,
		dto.UpdateTransactionRequest{CounterpartyName: &name})

	require.NoError(t, err)
	assert.Nil(t, resp.StockAfter, "sin cambio de cantidad no hay ajuste de stock")
	assert.Equal(t, int64(8), store.products[testProductID].Stock)
	assert.Equal(t, name, resp.CounterpartyName)
}

func TestUpdate_VentaAmpliadaSinStockRechazada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindSale, createReq(8, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), store.products[testProductID].Stock)

	newQty := int64(15) // necesitaría 7 unidades más de las que hay
	_, err = uc.Update(context.Background(), entity.KindSale, created.ID,
		dto.UpdateTransactionRequest{Quantity: &newQty})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), store.products[testProductID].Stock,
		"el rollback deja el stock intacto")
	assert.Equal(t, int64(8), store.txs[created.ID].Quantity,
		"el rollback deja el registro intacto")
}

func TestUpdate_KindDistintoEsNotFound(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindSale, createReq(1, 10))
	require.NoError(t, err)

	newQty := int64(2)
	_, err = uc.Update(context.Background(), entity.KindPurchase, created.ID,
		dto.UpdateTransactionRequest{Quantity: &newQty})

	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una venta no es visible por las rutas de compras")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — revierte el efecto sobre el stock
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_VentaDevuelveStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindSale, createReq(6, 10))
	require.NoError(t, err)
	require.Equal(t, int64(4), store.products[testProductID].Stock)

	require.NoError(t, uc.Delete(context.Background(), entity.KindSale, created.ID))

	assert.Equal(t, int64(10), store.products[testProductID].Stock)
	assert.Empty(t, store.txs)
}

func TestDelete_CompraDescuentaStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindPurchase, createReq(4, 10))
	require.NoError(t, err)
	require.Equal(t, int64(14), store.products[testProductID].Stock)

	require.NoError(t, uc.Delete(context.Background(), entity.KindPurchase, created.ID))

	assert.Equal(t, int64(10), store.products[testProductID].Stock)
}

func TestDelete_CompraConsumidaRechazada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 0)
	uc, _ := newTestCoordinator(store)

	// Compra 5, luego una venta consume 4: solo quedan 1 de las 5 compradas.
	compra, err := uc.Create(context.Background(), entity.KindPurchase, createReq(5, 10))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), entity.KindSale, createReq(4, 15))
	require.NoError(t, err)

	err = uc.Delete(context.Background(), entity.KindPurchase, compra.ID)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"revertir una compra ya consumida dejaría stock negativo")
	assert.Contains(t, store.txs, compra.ID, "la compra sigue registrada")
	assert.Equal(t, int64(1), store.products[testProductID].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock — corrección administrativa
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_AplicaDelta(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, pub := newTestCoordinator(store)

	resp, err := uc.AdjustStock(context.Background(), testProductID, -3)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Stock)

	ev, ok := pub.last()
	require.True(t, ok)
	assert.Equal(t, int64(7), ev.Stock)
}

func TestAdjustStock_DeltaCeroInvalido(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	_, err := uc.AdjustStock(context.Background(), testProductID, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Secuencia completa: compra, venta, ajuste y reversión encadenados
// ──────────────────────────────────────────────────────────────────────────────

func TestSecuenciaCompleta_StockConsistente(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 0)
	uc, _ := newTestCoordinator(store)
	ctx := context.Background()

	// Compra 50 a 2: stock 50, total 100
	compra, err := uc.Create(ctx, entity.KindPurchase, createReq(50, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(50), *compra.StockAfter)
	assert.True(t, compra.Total.Equal(decimal.NewFromInt(100)))

	// Venta 30 a 5: stock 20, total 150
	venta, err := uc.Create(ctx, entity.KindSale, createReq(30, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(20), *venta.StockAfter)
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(150)))

	// La venta baja a 10 unidades: devuelve 20 al stock
	newQty := int64(10)
	updated, err := uc.Update(ctx, entity.KindSale, venta.ID,
		dto.UpdateTransactionRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, int64(40), *updated.StockAfter)

	// Eliminar la compra requeriría -50 sobre 40: rechazado
	err = uc.Delete(ctx, entity.KindPurchase, compra.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(40), store.products[testProductID].Stock)

	// Eliminar la venta devuelve las 10 unidades y ahora la compra sí sale
	require.NoError(t, uc.Delete(ctx, entity.KindSale, venta.ID))
	require.NoError(t, uc.Delete(ctx, entity.KindPurchase, compra.ID))
	assert.Equal(t, int64(0), store.products[testProductID].Stock)
	assert.Empty(t, store.txs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos ventas que compiten por el mismo stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_VentasConcurrentes_SoloUnaGana(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	// Dos ventas de 6 sobre stock 10: juntas exceden el disponible.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), entity.KindSale, createReq(6, 10))
		}(i)
	}
	wg.Wait()

	var oks, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case err == domain.ErrInsufficientStock:
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una venta debe confirmarse")
	assert.Equal(t, 1, insufficient, "la otra debe fallar por stock insuficiente")
	assert.Equal(t, int64(4), store.products[testProductID].Stock)
	assert.Len(t, store.txs, 1, "la venta rechazada no deja registro")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_FiltraPorKind(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10)
	uc, _ := newTestCoordinator(store)

	created, err := uc.Create(context.Background(), entity.KindSale, createReq(1, 10))
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), entity.KindSale, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Nil(t, got.StockAfter, "las lecturas no reportan stock")

	_, err = uc.GetByID(context.Background(), entity.KindPurchase, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_SoloDelKindPedido(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 100)
	uc, _ := newTestCoordinator(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, entity.KindPurchase, createReq(5, 2))
	require.NoError(t, err)
	_, err = uc.Create(ctx, entity.KindSale, createReq(3, 4))
	require.NoError(t, err)
	_, err = uc.Create(ctx, entity.KindSale, createReq(2, 4))
	require.NoError(t, err)

	out, err := uc.List(ctx, entity.KindSale, dto.ListTransactionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Page.Total)
	for _, item := range out.Items {
		assert.Equal(t, entity.KindSale, item.Kind)
	}
}

func TestList_FechaInvalidaRechazada(t *testing.T) {
	store := newMemStore()
	uc, _ := newTestCoordinator(store)

	_, err := uc.List(context.Background(), entity.KindSale,
		dto.ListTransactionsRequest{StartDate: "31/12/2025"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
