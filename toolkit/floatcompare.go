package toolkit

import "gonum.org/v1/gonum/floats"

// Equals reports whether a and b are within eps of each other
// (|a-b| <= eps), delegating to gonum's floats.EqualWithinAbs rather than a
// hand-rolled subtraction-and-compare.
func Equals(a, b, eps float64) bool {
	return floats.EqualWithinAbs(a, b, eps)
}

// Compare returns -1, 0, or +1 for a < b, a "equals" b (within eps), or
// a > b. The eps band is symmetric: |a-b| <= eps always yields 0.
func Compare(a, b, eps float64) int {
	if Equals(a, b, eps) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
