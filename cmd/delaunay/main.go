package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
)

// Demo of the triangulation engine. Input on stdin should be newline
// separated points in the form "x y" (the interactive demo this grew out
// of fed it clicks in [-1,1]²; any coordinates work). Alternatively,
// --random generates a point cloud away from the window edges, like the
// original demo's random button.

var (
	random = kingpin.Flag("random", "Generate N random points instead of reading stdin.").PlaceHolder("N").Int()
	seed   = kingpin.Flag("seed", "Seed for --random (0 seeds from the clock).").Int64()
	flip   = kingpin.Flag("flip", "Legalize the triangulation with Delaunay edge flips.").Bool()
	lawson = kingpin.Flag("lawson", "Re-queue both triangles of every flip.").Bool()
	hull   = kingpin.Flag("hull", "Print the convex hull indices instead of triangulating.").Bool()
	draw   = kingpin.Flag("draw", "Render the result to a PNG and display it inline.").Bool()
	scale  = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("200").Float64()
)

func main() {
	kingpin.Parse()

	var points []delaunay.Vec2
	if *random > 0 {
		if *seed != 0 {
			rand.Seed(*seed)
		} else {
			rand.Seed(time.Now().UnixNano())
		}
		for i := 0; i < *random; i++ {
			// 0.8 to prevent getting too close to the edges of the window
			points = append(points, internal.RandomRange(-0.8, 0.8, -0.8, 0.8))
		}
	} else {
		points = readPoints(os.Stdin)
	}
	fmt.Printf("Read %d points\n", len(points))

	if *hull {
		indices, err := delaunay.ConvexHull(points)
		kingpin.FatalIfError(err, "convex hull")
		fmt.Println(indices)
		return
	}

	// Triangulate reorders points; everything below uses the sorted order.
	indices, err := delaunay.Triangulate(points)
	kingpin.FatalIfError(err, "triangulate")
	if *flip {
		if *lawson {
			indices = delaunay.FlipEdgesLawson(indices, points)
		} else {
			indices = delaunay.FlipEdges(indices, points)
		}
	}

	fmt.Printf("%d triangles\n", len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		fmt.Println(indices[i], indices[i+1], indices[i+2])
	}

	if *draw && len(points) > 0 {
		internal.DrawMesh(indices, points, *scale)
	}
}

func readPoints(in *os.File) []delaunay.Vec2 {
	points := []delaunay.Vec2{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) delaunay.Vec2 {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		kingpin.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	kingpin.FatalIfError(err, "invalid x in %q", line)
	y, err := strconv.ParseFloat(parts[1], 64)
	kingpin.FatalIfError(err, "invalid y in %q", line)
	return delaunay.Vec2{X: x, Y: y}
}
