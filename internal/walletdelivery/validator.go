package walletdelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidPoints validates that the amount parses as a positive number of points.
var ValidPoints validator.Func = func(fl validator.FieldLevel) bool {
	if amount, ok := fl.Field().Interface().(string); ok {
		d, err := decimal.NewFromString(amount)
		return err == nil && d.IsPositive()
	}

	return false
}
