package internal

import (
	"math"
	"math/rand"
)

// A 2D coordinate. All geometry in this package is index-based, so values
// are passed around freely; nothing ever mutates a Vec2 in place.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) IsZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon
}

func (v Vec2) SqrLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.SqrLength())
}

func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec2{v.X / length, v.Y / length}
}

// Shorten the vector to maxLength if it is longer than that.
func (v Vec2) Clamped(maxLength float64) Vec2 {
	if v.SqrLength() > maxLength*maxLength {
		return v.Normalized().Scale(maxLength)
	}
	return v
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// The angle from v to other, in radians between -pi and pi.
func (v Vec2) SignedAngle(other Vec2) float64 {
	return math.Atan2(v.Cross(other), v.Dot(other))
}

// Slope of the direction vector. Infinite for vertical vectors; use
// Collinear for comparisons that must survive verticals.
func (v Vec2) Slope() float64 {
	return v.Y / v.X
}

// Two direction vectors are collinear if they have equal slope. Vertical
// vectors get their own branch so we never divide by a zero X component.
func (v Vec2) Collinear(other Vec2) bool {
	vVertical := math.Abs(v.X) < Epsilon
	otherVertical := math.Abs(other.X) < Epsilon
	if vVertical || otherVertical {
		return vVertical && otherVertical
	}
	return Equal(v.Slope(), other.Slope())
}

// A uniform random point with x in [xMin, xMax) and y in [yMin, yMax).
func RandomRange(xMin, xMax, yMin, yMax float64) Vec2 {
	return Vec2{
		X: xMin + rand.Float64()*(xMax-xMin),
		Y: yMin + rand.Float64()*(yMax-yMin),
	}
}
