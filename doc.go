// Package hull computes convex hulls of 2D point sets.
//
// # Overview
//
// hull is a small, pure Go computational-geometry library for the GoGPU
// ecosystem. It implements the Graham Scan algorithm: the hull is grown in a
// single sweep over the input points sorted by their angle around an anchor
// point, accepting or rejecting candidate vertices by the sign of a 2D
// cross product.
//
// # Quick Start
//
//	import "github.com/gogpu/hull"
//
//	points := []hull.Point{
//	    hull.Pt(0, 0), hull.Pt(1, 0), hull.Pt(1, 1),
//	    hull.Pt(0, 1), hull.Pt(0.5, 0.5),
//	}
//
//	// Counter-clockwise hull vertices, starting at the anchor.
//	vertices := hull.ConvexHull(points)
//
// Callers with their own point type use ConvexHullFunc with a coordinate
// accessor; ConvexHullVec and ConvexHullFixed cover gmath and x/image
// fixed-point coordinates directly.
//
// # Algorithm
//
// ConvexHull runs in O(n log n), dominated by the angular sort. The input
// is never mutated; the algorithm sorts a local index permutation. Collinear
// points that lie exactly on a hull edge are retained in the output rather
// than pruned. Inputs with fewer than three points are returned unchanged,
// in their original order.
//
// # Coordinate System
//
// The library is agnostic to axis orientation. All documentation assumes
// mathematical coordinates (Y increases upward), where the anchor is the
// bottommost point and the hull winds counter-clockwise. Under graphics
// coordinates (Y increases downward) the same output is the topmost point
// followed by a clockwise winding on screen; the cross-product invariants
// are unaffected.
//
// # Numerical Stability
//
// Turn direction and angular order are decided by the sign of a float64
// cross product. Points that are almost, but not exactly, collinear can
// fall on either side of zero; the library does not attempt exact or
// adaptive-precision arithmetic. Inputs whose coordinates are exactly
// representable (integers, fixed-point values) are handled exactly.
package hull

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
