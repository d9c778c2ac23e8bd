package core

import "math"

// Round2 rounds a monetary value to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cashbackOf computes the reward for a spend basis: integer floor of the
// basis divided by 100, matching the ledger's one-percent convention.
func cashbackOf(basis float64) float64 {
	return math.Floor(basis / 100)
}
