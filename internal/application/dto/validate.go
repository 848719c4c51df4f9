package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate es el singleton del validador; los handlers lo usan vía Validate.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate corre las reglas `validate:` de un DTO y devuelve un mensaje
// legible con los campos que fallaron, o nil si todo está bien.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: falla regla '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validación: %s", strings.Join(parts, "; "))
}
