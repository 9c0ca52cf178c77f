package format

import (
	"math"
	"strconv"

	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency renders v as a dollar amount with en-US digit grouping.
// Whole amounts have no fraction digits.
func Currency(v float64) string {
	if v < 0 {
		return "-" + Currency(-v)
	}
	return "$" + Grouped(v)
}

// Grouped renders v with en-US digit grouping.
func Grouped(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

// Plain renders v the way a count is shown: no grouping, no trailing zeros.
func Plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Value renders a series value according to the report type unit.
func Value(rt domain.ReportType, v float64) string {
	if rt.Info().Currency {
		return Currency(v)
	}
	return Plain(v)
}

// Percent renders a share with one decimal and a percent sign.
func Percent(share float64) string {
	return strconv.FormatFloat(share, 'f', 1, 64) + "%"
}

// ShareOfTotal renders the percentage of value in total. A zero total yields "0.0%".
func ShareOfTotal(value, total float64) string {
	if total == 0 {
		return Percent(0)
	}
	return Percent(value / total * 100)
}
