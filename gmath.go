package hull

import "github.com/quasilyte/gmath"

// ConvexHullVec is ConvexHull for gmath vectors, for callers already
// working in the gmath coordinate types.
func ConvexHullVec(points []gmath.Vec) []gmath.Vec {
	return ConvexHullFunc(points, func(v gmath.Vec) Point {
		return Pt(v.X, v.Y)
	})
}
