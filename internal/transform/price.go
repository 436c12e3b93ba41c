package transform

import "fmt"

// MajorUnits converts an amount in minor currency units to major units:
// 1250 cents -> 12.5 dollars.
func MajorUnits(cents int64) float64 {
	return float64(cents) / 100
}

// FormatPrice renders an amount in minor currency units as a fixed
// two-decimal dollar string: 1250 -> "$12.50", 0 -> "$0.00".
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%.2f", MajorUnits(cents))
}
