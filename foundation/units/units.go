// Package units provides the display helpers used to present throughput,
// cost and improvement figures to people.
package units

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats values with english digit grouping.
var printer = message.NewPrinter(language.English)

// Set of currencies understood by FormatCurrency.
const (
	USD  = "USD"
	GWEI = "GWEI"
)

// Set of colors used to grade performance.
const (
	ColorExcellent = "#10b981"
	ColorGood      = "#8b5cf6"
	ColorAverage   = "#f59e0b"
	ColorPoor      = "#ef4444"
)

// FormatNumber renders a number with a K, M or B suffix using the specified
// number of decimal places.
func FormatNumber(num float64, precision int) string {
	switch {
	case num >= 1_000_000_000:
		return fmt.Sprintf("%.*fB", precision, num/1_000_000_000)
	case num >= 1_000_000:
		return fmt.Sprintf("%.*fM", precision, num/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.*fK", precision, num/1_000)
	default:
		return fmt.Sprintf("%.*f", precision, num)
	}
}

// FormatCurrency renders an amount in the specified currency. Dollar amounts
// under a cent keep four decimal places.
func FormatCurrency(amount float64, currency string) string {
	switch currency {
	case USD:
		if amount < 0.01 {
			return fmt.Sprintf("$%.4f", amount)
		}
		return fmt.Sprintf("$%.2f", amount)

	case GWEI:
		return printer.Sprintf("%.2f Gwei", amount)
	}

	return fmt.Sprintf("%.2f", amount)
}

// Percentage returns part as a percentage of whole. A zero whole
// yields zero.
func Percentage(part float64, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return (part / whole) * 100
}

// PerformanceColor grades a transactions per second figure.
func PerformanceColor(tps float64) string {
	switch {
	case tps >= 10_000:
		return ColorExcellent
	case tps >= 1_000:
		return ColorGood
	case tps >= 100:
		return ColorAverage
	default:
		return ColorPoor
	}
}

// Gain describes how much a new value improves on an old one.
type Gain struct {
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// Improvement calculates the gain of moving from old to new. A zero old
// value yields a zero gain.
func Improvement(old float64, new float64) Gain {
	if old == 0 {
		return Gain{}
	}

	return Gain{
		Percentage: Round((new-old)/old*100, 2),
		Multiplier: Round(new/old, 2),
	}
}

// Round rounds the value half away from zero to the specified number
// of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
