package gosieview

import (
	"math"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func radiansToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}
