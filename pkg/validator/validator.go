package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	RegisterCustomValidations(validate)
}

// ValidateStruct runs the struct tags and reports failures as ErrInvalidInput.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", e.ErrInvalidInput, describe(err))
	}
	return nil
}

// Var validates a single value against a tag list, e.g. Var(loc, "required,location").
func Var(v interface{}, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("%w: %s", e.ErrInvalidInput, describe(err))
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := fe.Field()
	if field == "" {
		field = "value"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
