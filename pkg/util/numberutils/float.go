package numberutils

import "math"

// RoundToInt rounds the given float to the nearest integer, half away from zero.
func RoundToInt(value float64) int {
	return int(math.Round(value))
}

// RoundToDecimals rounds the given float to the requested number of decimal places.
func RoundToDecimals(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// Round1 rounds the given float to one decimal place.
func Round1(value float64) float64 {
	return RoundToDecimals(value, 1)
}
