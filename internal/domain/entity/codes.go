package entity

import (
	"fmt"
	"math/rand"
)

const codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewProductCode genera un código interno de producto con formato #####-AAAA.
// Factory explícita: se invoca al crear el producto, no como hook de persistencia.
func NewProductCode() string {
	letters := make([]byte, 4)
	for i := range letters {
		letters[i] = codeLetters[rand.Intn(len(codeLetters))]
	}
	return fmt.Sprintf("%05d-%s", 10000+rand.Intn(90000), letters)
}

// NewBillNumber genera el número de comprobante de una venta: MV + 6 dígitos.
// El coordinador de transacciones lo asigna antes de persistir la venta.
func NewBillNumber() string {
	return fmt.Sprintf("MV%06d", 100000+rand.Intn(900000))
}
