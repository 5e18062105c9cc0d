package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var initOnce sync.Once

// Init wires json field names and the notblank rule into gin's validator.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

// ValidateStruct runs gin's validator over obj and maps the first failure.
func ValidateStruct(obj any) error {
	Init()
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return MapValidationError(err)
	}
	return nil
}
