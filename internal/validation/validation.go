package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report fields under their JSON names so error payloads match the
	// request bodies clients sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct runs the shared validator over s.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ErrorsToJson renders validation failures as a {"field": "tag"} JSON object.
func ErrorsToJson(validationErrs error) (string, error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(validationErrs, &fieldErrs) {
		return "", validationErrs
	}

	errsMap := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
