package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/nradhesh/Outbreak-blockchain/internal/geo"
)

func RegisterCustomValidations(validate *validator.Validate) {
	_ = validate.RegisterValidation("location", validateLocation)
}

// validateLocation accepts "lat,lon" strings that parse and fall inside
// the coordinate range.
func validateLocation(fl validator.FieldLevel) bool {
	_, err := geo.ParseLocation(fl.Field().String())
	return err == nil
}
