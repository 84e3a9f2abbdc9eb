package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// DrawMesh renders a triangulation as a wireframe with its points on
// top, writes it to /tmp, and cats it into the terminal. This is the
// demo/debugging view; nothing in the algorithms depends on it.
func DrawMesh(indices IndexList, points []Vec2, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 0, 0.8)
	for _, t := range indices.Triangles() {
		a, b, tc := points[t.A], points[t.B], points[t.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(tc.X, tc.Y)
		c.ClosePath()
	}
	c.Stroke()

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 4/scale)
	}
	c.Fill()

	c.SavePNG("/tmp/delaunay_mesh.png")
	imgcat.CatFile("/tmp/delaunay_mesh.png", os.Stdout)
}
