// Package subdiv builds and queries planar subdivisions: given a set of
// line segments, it constructs the doubly-connected edge list of vertices,
// half-edges, and faces those segments induce, under a numeric tolerance.
//
// Construction is one pass (FromLines); the result is read-only. Validate
// re-checks the builder's structural invariants, as listed on Validate.
package subdiv
