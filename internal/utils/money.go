package utils

import "math"

// Money helpers for the gateway boundary. The gateway always speaks in the
// smallest currency unit; everything stored locally is in major units.

// ToMinorUnits converts a major-unit amount (e.g. 12.34) to minor units
// (1234), rounding to the nearest cent.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts a gateway-reported minor-unit amount back to major
// units.
func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}
