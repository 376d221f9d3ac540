package utils

import "math"

// MoneyTolerance is the maximum drift accepted between linked monetary
// amounts (sale subtotal vs item lines, computed total vs declared total).
const MoneyTolerance = 0.01

// MoneyEqual reports whether two amounts agree within MoneyTolerance.
func MoneyEqual(a, b float64) bool {
	return math.Abs(a-b) < MoneyTolerance
}

// Round2 rounds an amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
