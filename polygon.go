package hull

// ContainsPoint reports whether p lies inside or on the boundary of the
// convex polygon poly. The polygon must be in counter-clockwise order, as
// produced by ConvexHull. Polygons with fewer than three vertices contain
// nothing.
func ContainsPoint(poly []Point, p Point) bool {
	if len(poly) < 3 {
		return false
	}
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		// p strictly right of edge a->b means outside.
		if b.Sub(a).Cross(p.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

// SignedArea returns the area of the polygon computed with the shoelace
// formula. Counter-clockwise polygons have positive area, clockwise
// negative.
func SignedArea(poly []Point) float64 {
	var sum float64
	for i, a := range poly {
		sum += a.Cross(poly[(i+1)%len(poly)])
	}
	return sum / 2
}

// IsCounterClockwise reports whether the polygon's vertices wind
// counter-clockwise. Degenerate polygons (zero area) are not
// counter-clockwise.
func IsCounterClockwise(poly []Point) bool {
	return SignedArea(poly) > 0
}

// Perimeter returns the total edge length of the polygon, including the
// closing edge from the last vertex back to the first.
func Perimeter(poly []Point) float64 {
	var sum float64
	for i, a := range poly {
		sum += a.Distance(poly[(i+1)%len(poly)])
	}
	return sum
}
