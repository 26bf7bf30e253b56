package services

import "math"

const (
	// ratingCapSeconds caps the regional average duration used in the
	// rating formula; anything slower rates as zero.
	ratingCapSeconds = 3600.0
	// maxRating is the best achievable rating.
	maxRating = 5.0
	// paymentBase is the per-delivery payment multiplied by the frozen
	// assignment coefficient.
	paymentBase = 500
)

// Rating converts the minimum regional average completion duration, in
// seconds, into a courier rating.
//
// Rating = (1 - min(t, 3600)/3600) * 5, rounded to two decimal places:
// 5.00 at duration zero, falling linearly to 0.00 at one hour or slower.
// The result is monotonically non-increasing in t.
func Rating(minAvgDurationSeconds float64) float64 {
	t := math.Min(minAvgDurationSeconds, ratingCapSeconds)
	rating := (1 - t/ratingCapSeconds) * maxRating
	return math.Round(rating*100) / 100
}

// Earnings sums the payment over completed assignments: 500 multiplied by
// each assignment's frozen coefficient. A courier with no completed
// assignments earns zero.
func Earnings(coefficients []int) int {
	sum := 0
	for _, c := range coefficients {
		sum += c
	}
	return paymentBase * sum
}
