package types

import (
	"fmt"
	"strconv"
)

// CellString renders a section cell for text formats. Floats keep up to two
// decimals without trailing zeros.
func CellString(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case float64:
		return strconv.FormatFloat(roundTo(c, 2), 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

func roundTo(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'f', places, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}
