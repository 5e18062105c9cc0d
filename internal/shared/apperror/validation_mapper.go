package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// employee_name -> Employee Name
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "notblank":
			return BlankField(field)
		case "gt":
			return OutOfRangeField(field, "greater than "+e.Param())
		case "gte":
			return OutOfRangeField(field, "at least "+e.Param())
		case "lte":
			return OutOfRangeField(field, "at most "+e.Param())
		default:
			return InvalidField(field)
		}
	}

	return Wrap(err,
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
