package utils

import (
	"errors"
	"reflect"
	"strings"

	"gest35bi/apperrors"
	"gest35bi/models"

	"github.com/go-playground/validator/v10"
)

const CategoryRangeMessage = "OEO deve ser um número entre 1 e 9"

var Validate *validator.Validate

var tagMessages = map[string]string{
	"required": "campo obrigatório",
	"oeo":      CategoryRangeMessage,
}

func init() {
	Validate = validator.New()

	// Report fields by their wire name.
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := Validate.RegisterValidation("oeo", func(fl validator.FieldLevel) bool {
		return ValidateCategory(fl.Field().Interface())
	}); err != nil {
		panic(err)
	}
}

// ValidateCategory reports whether x converts to an integer OEO code in [1,9].
func ValidateCategory(x any) bool {
	_, ok := models.ParseCategory(x)
	return ok
}

// ValidateRequiredFields reports whether name, target and category are all
// present once surrounding whitespace is removed.
func ValidateRequiredFields(name, target, category string) bool {
	for _, v := range []string{name, target, category} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ValidateIndicatorInput checks a create request. The returned error is an
// *apperrors.ValidationError keyed by wire field name.
func ValidateIndicatorInput(in models.IndicatorInput) error {
	err := Validate.Struct(in)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		message, ok := tagMessages[e.Tag()]
		if !ok {
			message = e.Tag()
		}
		fields[e.Field()] = message
	}

	message := "Dados do indicador inválidos"
	if _, onlyCategory := fields["oeo"]; onlyCategory && len(fields) == 1 {
		message = fields["oeo"]
	}
	if !ValidateRequiredFields(in.Name, in.Target, in.Category) {
		message = "Nome, meta e OEO são obrigatórios"
	}
	return apperrors.NewValidationError(message, fields)
}
