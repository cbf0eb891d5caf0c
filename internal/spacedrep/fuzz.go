package spacedrep

import "math/rand"

// fuzzInterval applies a uniform multiplicative jitter to a success
// interval: none for short intervals, ±10% capped at ±1 day up to a week,
// ±5% beyond. Keeps review load from clustering on the same calendar day.
func fuzzInterval(interval float64, rng *rand.Rand) float64 {
	var delta float64
	switch {
	case interval <= 2:
		return interval
	case interval <= 7:
		delta = interval * 0.10
		if delta > 1 {
			delta = 1
		}
	default:
		delta = interval * 0.05
	}
	return interval + (rng.Float64()*2-1)*delta
}
