// Command hulldemo scatters random points, computes their convex hull and
// renders the result to a PNG using the gg 2D graphics library.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/hull"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		count  = flag.Int("points", 64, "number of random points")
		seed   = flag.Uint64("seed", 1, "random seed")
		output = flag.String("output", "hull.png", "output file")
	)
	flag.Parse()

	points := scatter(*count, float64(*width), float64(*height), *seed)
	vertices := hull.ConvexHull(points)

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.White)

	drawHull(dc, vertices)
	drawPoints(dc, points)

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Hull with %d of %d points saved to %s (%dx%d)\n",
		len(vertices), len(points), *output, *width, *height)
}

// scatter returns count random points inside the image, inset by a margin
// so the hull outline stays clear of the borders.
func scatter(count int, w, h float64, seed uint64) []hull.Point {
	rng := rand.New(rand.NewPCG(seed, 0))
	const margin = 40.0
	points := make([]hull.Point, count)
	for i := range points {
		points[i] = hull.Pt(
			margin+rng.Float64()*(w-2*margin),
			margin+rng.Float64()*(h-2*margin),
		)
	}
	return points
}

func drawHull(dc *gg.Context, vertices []hull.Point) {
	if len(vertices) < 3 {
		return
	}
	for i, v := range vertices {
		if i == 0 {
			dc.MoveTo(v.X, v.Y)
		} else {
			dc.LineTo(v.X, v.Y)
		}
	}
	dc.ClosePath()

	dc.SetRGBA(0.2, 0.5, 1, 0.25)
	_ = dc.FillPreserve()

	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(2)
	_ = dc.Stroke()
}

func drawPoints(dc *gg.Context, points []hull.Point) {
	dc.SetRGB(0.9, 0.2, 0.2)
	for _, p := range points {
		dc.DrawCircle(p.X, p.Y, 3)
		_ = dc.Fill()
	}
}
