package hull

import "golang.org/x/image/math/fixed"

// ConvexHullFixed is ConvexHull for 26.6 fixed-point coordinates, the
// representation used by font and glyph geometry. Coordinates are compared
// in raw 26.6 units, which are exactly representable as float64, so the
// turn and ordering tests are exact.
func ConvexHullFixed(points []fixed.Point26_6) []fixed.Point26_6 {
	return ConvexHullFunc(points, func(p fixed.Point26_6) Point {
		return Pt(float64(p.X), float64(p.Y))
	})
}
