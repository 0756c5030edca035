package toolkit

import "unicode"

// NaturalCompare compares a and b the way a human alphabetizes file names:
// runs of digits compare numerically (so "2" < "10"), everything else
// compares byte-for-byte. Leading zeros don't affect numeric comparison, so
// "b-2" and "b-02" compare equal. Returns -1, 0, or +1.
//
// Pinned fixtures: NaturalCompare("b-2", "b-02") == 0,
// NaturalCompare("02-b-2", "2-b-1") > 0.
func NaturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			numA, nextI := scanDigits(ra, i)
			numB, nextJ := scanDigits(rb, j)
			if numA != numB {
				if numA < numB {
					return -1
				}
				return 1
			}
			i, j = nextI, nextJ
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	default:
		return 0
	}
}

// scanDigits reads the maximal run of digits starting at i, returning its
// numeric value (leading zeros stripped) and the index just past the run.
func scanDigits(r []rune, i int) (int64, int) {
	start := i
	for i < len(r) && unicode.IsDigit(r[i]) {
		i++
	}
	var value int64
	for _, d := range r[start:i] {
		value = value*10 + int64(d-'0')
	}
	return value, i
}
