// Package toolkit holds the small ancillary collaborators the core
// subdivision package references but does not own: epsilon-aware float
// comparison, Fortran-style rounding/modulo, a primality test, natural-order
// string comparison, tuple equality, and path helpers.
package toolkit
