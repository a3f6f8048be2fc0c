package hull

import (
	"fmt"
	"testing"
)

// BenchmarkConvexHull measures hull construction over uniform random clouds
// of increasing size. The sort dominates, so growth should track n log n.
func BenchmarkConvexHull(b *testing.B) {
	for _, n := range []int{16, 256, 4096, 65536} {
		points := randomCloud(n, 7)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ConvexHull(points)
			}
		})
	}
}

// BenchmarkConvexHull_Collinear exercises the worst case for the angular
// tie-break: every comparison falls through to the distance test.
func BenchmarkConvexHull_Collinear(b *testing.B) {
	const n = 4096
	points := make([]Point, n)
	for i := range points {
		points[i] = Pt(float64(i), float64(i))
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ConvexHull(points)
	}
}
