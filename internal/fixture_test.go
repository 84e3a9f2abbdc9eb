package internal

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file loads the svg fixtures and outputs point sets. This is not a
// full svg handler: it parses the SVG and collects every circle's center
// as a point, in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Vec2 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Vec2, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circle.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circle.Attributes["cy"], err)
		}
		points = append(points, Vec2{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

// Twelve clicks recorded from an interactive session. All x values are
// distinct, so the sorted order (and with it any index expectation over
// the triangulation) is stable.
func DemoClicks() []Vec2 {
	return []Vec2{
		{-0.637, -0.141},
		{-0.473, 0.448},
		{-0.148, 0.714},
		{-0.293, 0.107},
		{0.018, 0.279},
		{0.307, 0.424},
		{0.549, -0.154},
		{-0.295, -0.331},
		{0.180, -0.331},
		{-0.014, -0.089},
		{0.195, -0.719},
		{-0.158, -0.831},
	}
}

// Twelve points whose hull is known, for the hull routines. Unlike
// DemoClicks these are in click order, not sorted order.
func HullClicks() []Vec2 {
	return []Vec2{
		{0.1328125, 0.2265625},
		{-0.123046875, 0.080729164},
		{0.26953125, 0.45833334},
		{0.15429688, 0.390625},
		{0.001953125, 0.2890625},
		{-0.119140625, 0.38802084},
		{-0.1484375, -0.015625},
		{-0.203125, 0.20833333},
		{0.1953125, 0.020833334},
		{0.001953125, 0.1484375},
		{-0.2421875, 0.47135416},
		{-0.34375, 0.17447917},
	}
}
