// Package geom provides pure-value 2D numeric primitives: points, sizes,
// rectangles, and line segments in three coordinate flavors (float64,
// float32, int), plus shoelace-based polygon area/centroid/orientation.
//
// These types carry no topology; they are the leaf layer that subdiv builds
// its doubly-connected edge list on top of.
package geom
