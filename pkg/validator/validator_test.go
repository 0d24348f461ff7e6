package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcardenas/inventra/pkg/validator"
)

type testPayload struct {
	Name     string          `validate:"required,min=1,max=10"`
	Quantity int64           `validate:"required,min=1"`
	Price    decimal.Decimal `validate:"dmin=0"`
}

func TestValidateStruct_Valido(t *testing.T) {
	errs := validator.ValidateStruct(testPayload{
		Name:     "Teclado",
		Quantity: 2,
		Price:    decimal.RequireFromString("19.99"),
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_CamposRequeridos(t *testing.T) {
	errs := validator.ValidateStruct(testPayload{Price: decimal.Zero})
	require.NotEmpty(t, errs)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "testPayload.Name")
	assert.Contains(t, fields, "testPayload.Quantity")
}

func TestValidateStruct_DminRechazaNegativo(t *testing.T) {
	errs := validator.ValidateStruct(testPayload{
		Name:     "Mouse",
		Quantity: 1,
		Price:    decimal.RequireFromString("-0.01"),
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "dmin", errs[0].Tag)
}

func TestValidateStruct_MaxDeLongitud(t *testing.T) {
	errs := validator.ValidateStruct(testPayload{
		Name:     "Nombre demasiado largo",
		Quantity: 1,
		Price:    decimal.Zero,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "max", errs[0].Tag)
	assert.Equal(t, "testPayload.Name", errs[0].Field)
}

func TestValidateStruct_DminAceptaCero(t *testing.T) {
	errs := validator.ValidateStruct(testPayload{
		Name:     "Muestra",
		Quantity: 1,
		Price:    decimal.Zero,
	})
	assert.Empty(t, errs)
}
