package hull

import "sort"

// ConvexHull returns the convex hull of points as a new slice, ordered
// counter-clockwise starting at the anchor. The anchor is the point with
// the smallest Y coordinate, ties broken toward the smallest X.
//
// The input is read-only to the algorithm and may contain duplicates.
// Collinear points lying exactly on a hull edge are retained in the output.
// Inputs with fewer than three points are returned unchanged, in their
// original order.
func ConvexHull(points []Point) []Point {
	idx := ConvexHullIndices(points)
	out := make([]Point, len(idx))
	for i, j := range idx {
		out[i] = points[j]
	}
	return out
}

// AppendConvexHull appends the hull vertices of points to dst and returns
// the extended slice, following the append idiom: the result's length is
// the position one past the last vertex written, so the number of vertices
// written is len(result) - len(dst). Ordering and edge cases are the same
// as for ConvexHull.
func AppendConvexHull(dst, points []Point) []Point {
	for _, j := range ConvexHullIndices(points) {
		dst = append(dst, points[j])
	}
	return dst
}

// ConvexHullFunc returns the hull of a slice of arbitrary elements. The at
// accessor projects an element to its 2D position; elements themselves are
// carried through to the output untouched, so callers keep their own point
// or payload type.
func ConvexHullFunc[P any](points []P, at func(P) Point) []P {
	pts := make([]Point, len(points))
	for i, p := range points {
		pts[i] = at(p)
	}
	idx := ConvexHullIndices(pts)
	out := make([]P, len(idx))
	for i, j := range idx {
		out[i] = points[j]
	}
	return out
}

// ConvexHullIndices returns the hull as indices into points, ordered
// counter-clockwise starting at the anchor. This is the core form that
// ConvexHull, AppendConvexHull and ConvexHullFunc wrap; it is exported for
// callers that need to correlate hull vertices with per-point payload data.
//
// Fewer than three points yield the identity permutation.
func ConvexHullIndices(points []Point) []int {
	if len(points) < 3 {
		idx := make([]int, len(points))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	anchor := anchorIndex(points)

	// Working copy of every index except the anchor, ordered by angle
	// around it. The caller's slice is never reordered.
	order := make([]int, 0, len(points))
	for i := range points {
		if i != anchor {
			order = append(order, i)
		}
	}
	less := angularLess(points[anchor])
	sort.Slice(order, func(i, j int) bool {
		return less(points[order[i]], points[order[j]])
	})

	// The anchor goes once more at the end so the sweep closes the hull
	// without special-casing the last edge.
	order = append(order, anchor)

	// Sweep: the stack starts with the anchor and the point with the
	// smallest angle. A candidate that would make the last edge turn
	// clockwise pops the stack; zero cross (collinear) keeps the vertex.
	stack := make([]int, 0, len(points)+1)
	stack = append(stack, anchor, order[0])
	for _, k := range order[1:] {
		for len(stack) > 2 {
			last := points[stack[len(stack)-1]].Sub(points[stack[len(stack)-2]])
			curr := points[k].Sub(points[stack[len(stack)-1]])
			if last.Cross(curr) >= 0 {
				break
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, k)
	}

	// Drop the duplicate anchor pushed by the closing edge.
	stack = stack[:len(stack)-1]
	Logger().Debug("graham scan", "points", len(points), "vertices", len(stack))
	return stack
}

// anchorIndex returns the index of the anchor point: smallest Y, ties
// broken toward the smallest X. Note the historical description of this
// rule says ties go "as far to the right as possible", but the comparator
// in actual use has always preferred the leftmost point; the comparator
// behavior is what everything downstream depends on, and is kept.
func anchorIndex(points []Point) int {
	min := 0
	for i := 1; i < len(points); i++ {
		p, q := points[i], points[min]
		if p.Y < q.Y || (p.Y == q.Y && p.X < q.X) {
			min = i
		}
	}
	return min
}

// angularLess returns a comparator ordering points by the angle their
// direction from origin makes with the positive X axis. The comparison uses
// the sign of the 2D cross product of the two direction vectors, never an
// explicit angle, so there is no trigonometry and no branch-cut
// discontinuity. An exactly zero cross product means the points are
// collinear with the origin; the closer one orders first, which keeps
// points sharing a hull edge in sweep order.
func angularLess(origin Point) func(a, b Point) bool {
	return func(a, b Point) bool {
		da := a.Sub(origin)
		db := b.Sub(origin)
		if cross := da.Cross(db); cross != 0 {
			return cross > 0
		}
		return da.LengthSquared() < db.LengthSquared()
	}
}
