package fare

import "math"

// Fare constants in XOF. The currency has no decimal subunits, so amounts
// are whole francs.
const (
	BaseFee    = 500
	PerKmRate  = 300
	PerMinRate = 50
)

// Estimate calculates the estimated fare for a ride from its distance and
// optional duration. The result is never negative.
func Estimate(distanceKm, durationMin float64) int {
	total := BaseFee + distanceKm*PerKmRate + durationMin*PerMinRate
	amount := int(math.Round(total))
	if amount < 0 {
		return 0
	}
	return amount
}
