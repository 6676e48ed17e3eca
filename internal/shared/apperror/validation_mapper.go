package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// housing_allowance -> Housing Allowance
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns a gin binding error into an INVALID_INPUT AppError
// describing the first offending field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "max":
			return fieldTooLong(field, e.Param())
		case "oneof":
			return fieldNotOneOf(field, strings.ReplaceAll(e.Param(), " ", ", "))
		case "datetime":
			return fieldBadDate(field)
		default:
			return InvalidField(field)
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return InvalidField(formatFieldName(typeErr.Field))
	}

	return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
}
