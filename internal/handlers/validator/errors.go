package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrValidation struct {
	error
	Field string
	Tag   string
}

func newErrValidation(fe validator.FieldError) *ErrValidation {
	return &ErrValidation{
		error: fmt.Errorf("%s %s", fieldPath(fe), ruleMessage(fe)),
		Field: fieldPath(fe),
		Tag:   fe.Tag(),
	}
}

// fieldPath drops the root struct name: "AnalyticsRequest.liveMetrics.efficiency" becomes "liveMetrics.efficiency".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "finite":
		return "must be a finite number"
	case "report_format":
		return fmt.Sprintf("must be one of csv, html, xlsx, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
