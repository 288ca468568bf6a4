package calculation

import (
	"math"
)

// rateEqualityEpsilon is how close the monthly return and growth rates may be
// before the closed forms switch to their r == g limits.
const rateEqualityEpsilon = 1e-12

// GrowingAnnuityPV is the present value of n monthly payments, the first equal
// to payment and each later one growing by g, discounted at r per month.
// Payments fall at the end of each month.
func GrowingAnnuityPV(payment, g, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	periods := float64(n)
	if ratesEqual(r, g) {
		return payment * periods / (1 + r)
	}
	return payment * (1 - math.Pow((1+g)/(1+r), periods)) / (r - g)
}

// GrowingAnnuityFV is the value at month n of the same payment stream,
// compounded at r per month.
func GrowingAnnuityFV(payment, g, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	periods := float64(n)
	if ratesEqual(r, g) {
		return payment * periods * math.Pow(1+r, periods-1)
	}
	return payment * (math.Pow(1+r, periods) - math.Pow(1+g, periods)) / (r - g)
}

func ratesEqual(r, g float64) bool {
	return math.Abs(r-g) <= rateEqualityEpsilon
}
