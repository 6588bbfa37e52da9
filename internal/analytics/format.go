package analytics

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NotAvailable is displayed in place of figures that cannot be computed.
const NotAvailable = "N/A"

var (
	billion         = decimal.New(1, 9)
	million         = decimal.New(1, 6)
	thousand        = decimal.New(1, 3)
	hundredThousand = decimal.New(1, 5)
)

// FormatCurrency renders a dollar amount the way the dashboard cards show it:
// one decimal for billions and millions, whole thousands from 100K, cents below that.
// Rounding is decimal, halves away from zero, so 2.25M never prints as 2.2M.
func FormatCurrency(amount float64) string {
	if !finite(amount) {
		return NotAvailable
	}

	d := decimal.NewFromFloat(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	switch {
	case d.GreaterThanOrEqual(billion):
		return sign + "$" + d.Div(billion).StringFixed(1) + "B"
	case d.GreaterThanOrEqual(million):
		return sign + "$" + d.Div(million).StringFixed(1) + "M"
	case d.GreaterThanOrEqual(hundredThousand):
		return sign + "$" + d.Div(thousand).StringFixed(0) + "K"
	default:
		return sign + "$" + d.StringFixed(2)
	}
}

// FormatPercent renders value with the given number of decimal places and a percent sign.
func FormatPercent(value float64, places int32) string {
	if !finite(value) {
		return NotAvailable
	}
	return decimal.NewFromFloat(value).StringFixed(places) + "%"
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
