package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jfcardenas/inventra/internal/domain/entity"
)

func TestStockEffect_CompraPositivoVentaNegativo(t *testing.T) {
	compra := &entity.Transaction{Kind: entity.KindPurchase, Quantity: 7}
	venta := &entity.Transaction{Kind: entity.KindSale, Quantity: 7}

	assert.Equal(t, int64(7), compra.StockEffect())
	assert.Equal(t, int64(-7), venta.StockEffect())
}

func TestDefaultTotal_CantidadPorPrecio(t *testing.T) {
	total := entity.DefaultTotal(3, decimal.RequireFromString("10.50"))
	assert.True(t, total.Equal(decimal.RequireFromString("31.50")),
		"total = 3 * 10.50 = 31.50, se esperaba %s", total)
}

func TestValidKind(t *testing.T) {
	assert.True(t, entity.ValidKind(entity.KindPurchase))
	assert.True(t, entity.ValidKind(entity.KindSale))
	assert.False(t, entity.ValidKind("purchase"), "los kinds son sensibles a mayúsculas")
	assert.False(t, entity.ValidKind("TRANSFER"))
	assert.False(t, entity.ValidKind(""))
}

func TestNewBillNumber_Formato(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^MV\d{6}$`, entity.NewBillNumber())
	}
}

func TestNewProductCode_Formato(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^\d{5}-[A-Z]{4}$`, entity.NewProductCode())
	}
}
