package service

import (
	"fmt"
	"strings"

	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
)

type ErrInvalidInput struct {
	error
}

func NewErrInvalidInput(field string, value int) *ErrInvalidInput {
	return &ErrInvalidInput{fmt.Errorf("bad request: %s must be positive, got %d", field, value)}
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format string) *ErrUnsupportedFormat {
	supported := make([]string, 0, len(types.SupportedFormats))
	for _, f := range types.SupportedFormats {
		supported = append(supported, string(f))
	}
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format %q, expected one of %s", format, strings.Join(supported, ", "))}
}
