package toolkit

import "fmt"

// IsPrime reports whether n is prime. It rejects non-positive n with
// ErrOutOfRange. 1, 2, and 3 are prime; 4 is not (spec-pinned fixtures).
func IsPrime(n int) (bool, error) {
	if n <= 0 {
		return false, fmt.Errorf("toolkit: IsPrime(%d): %w", n, ErrOutOfRange)
	}
	if n <= 3 {
		return true, nil
	}
	if n%2 == 0 || n%3 == 0 {
		return false, nil
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false, nil
		}
	}
	return true, nil
}
