package scoring

import "math"

// round rounds to the nearest integer with halves going up (toward +Inf),
// so 2.5 rounds to 3 and -2.5 rounds to -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
