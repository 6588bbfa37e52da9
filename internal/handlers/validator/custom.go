package validator

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
)

func finiteValidator(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Float64 && field.Kind() != reflect.Float32 {
		return false
	}
	f := field.Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func reportFormatValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, f := range types.SupportedFormats {
		if strings.EqualFold(val, string(f)) {
			return true
		}
	}
	return false
}

// jsonFieldName reports fields by their JSON name so errors match the request body.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
