package calc

import "math"

// negzero returns -0, which cannot be written as a constant.
func negzero() float64 {
	return math.Copysign(0, -1)
}
