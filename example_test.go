package hull_test

import (
	"fmt"

	"github.com/gogpu/hull"
)

func ExampleConvexHull() {
	points := []hull.Point{
		hull.Pt(0, 0),
		hull.Pt(1, 0),
		hull.Pt(1, 1),
		hull.Pt(0, 1),
		hull.Pt(0.5, 0.5),
	}

	for _, v := range hull.ConvexHull(points) {
		fmt.Printf("(%g, %g)\n", v.X, v.Y)
	}
	// Output:
	// (0, 0)
	// (1, 0)
	// (1, 1)
	// (0, 1)
}

func ExampleConvexHullFunc() {
	type city struct {
		Name string
		Lon  float64
		Lat  float64
	}
	cities := []city{
		{"Lisbon", -9.14, 38.72},
		{"Oslo", 10.75, 59.91},
		{"Athens", 23.73, 37.98},
		{"Berlin", 13.40, 52.52},
	}

	border := hull.ConvexHullFunc(cities, func(c city) hull.Point {
		return hull.Pt(c.Lon, c.Lat)
	})
	for _, c := range border {
		fmt.Println(c.Name)
	}
	// Output:
	// Athens
	// Oslo
	// Lisbon
}
