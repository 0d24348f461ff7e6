package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describe una violación de una regla de validación en un campo del request.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// dmin: mínimo para decimal.Decimal (ej. dmin=0 -> no negativo).
	_ = v.RegisterValidation("dmin", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		min, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return d.GreaterThanOrEqual(min)
	})

	return v
}

// ValidateStruct aplica las reglas de los tags `validate` y devuelve los campos que fallan.
// Slice vacío (nil) significa request válido.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
