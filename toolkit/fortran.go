package toolkit

import "math"

// Floor returns the greatest integer <= x, Fortran FLOOR-intrinsic style.
func Floor(x float64) int { return int(math.Floor(x)) }

// Ceiling returns the least integer >= x, Fortran CEILING-intrinsic style.
func Ceiling(x float64) int { return int(math.Ceil(x)) }

// Modulo returns the Euclidean-style residue of a with respect to b, whose
// sign always matches b (Fortran MODULO, as opposed to Go's %/Fortran MOD
// which take the sign of a). Pinned fixtures: Modulo(12,5)=2,
// Modulo(-12,5)=3, Modulo(12,-5)=-3, Modulo(-12,-5)=-2.
func Modulo(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
