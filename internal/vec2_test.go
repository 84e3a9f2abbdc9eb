package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2IsZero(t *testing.T) {
	assert.True(t, Vec2{0, 0}.IsZero())
	assert.False(t, Vec2{4, 0}.IsZero())
	assert.True(t, Vec2{}.IsZero())
}

func TestVec2Length(t *testing.T) {
	v := Vec2{6, 3}
	assert.InDelta(t, 45.0, v.SqrLength(), Epsilon)
	assert.InDelta(t, 6.708203933, v.Length(), Epsilon)

	v = Vec2{-4, 2}
	assert.InDelta(t, 20.0, v.SqrLength(), Epsilon)
	assert.InDelta(t, 4.472135955, v.Length(), Epsilon)

	v = Vec2{0, -5}
	assert.InDelta(t, 25.0, v.SqrLength(), Epsilon)
	assert.InDelta(t, 5.0, v.Length(), Epsilon)
}

func TestVec2Normalized(t *testing.T) {
	assert.InDelta(t, 1.0, Vec2{4, -7}.Normalized().Length(), Epsilon)
	assert.Equal(t, Vec2{-0.8, 0.6}, Vec2{-8, 6}.Normalized())
	// A zero vector has no direction to preserve; it stays put.
	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
}

func TestVec2Clamped(t *testing.T) {
	v := Vec2{4, 10}.Clamped(5)
	assert.InDelta(t, 5.0, v.Length(), Epsilon)

	v = Vec2{4, 10}
	assert.Equal(t, v, v.Clamped(15))

	v = Vec2{24, 18}.Clamped(2)
	assert.InDelta(t, 1.6, v.X, Epsilon)
	assert.InDelta(t, 1.2, v.Y, Epsilon)
}

func TestVec2Slope(t *testing.T) {
	assert.InDelta(t, 0.5, Vec2{4, 2}.Slope(), Epsilon)
	assert.InDelta(t, -4.0, Vec2{2, -8}.Slope(), Epsilon)
	assert.InDelta(t, 0.0, Vec2{6, 0}.Slope(), Epsilon)
	assert.InDelta(t, -0.5, Vec2{-1, 0.5}.Slope(), Epsilon)
}

func TestVec2Collinear(t *testing.T) {
	assert.True(t, Vec2{8, -4}.Collinear(Vec2{-2, 1}))
	assert.False(t, Vec2{8, -4}.Collinear(Vec2{-2, 2}))

	// Verticals never divide by zero
	assert.True(t, Vec2{0, 3}.Collinear(Vec2{0, -1}))
	assert.False(t, Vec2{0, 3}.Collinear(Vec2{1, 100}))
}

func TestVec2Dot(t *testing.T) {
	assert.InDelta(t, 9.0, Vec2{2, 5}.Dot(Vec2{7, -1}), Epsilon)
}

func TestVec2SignedAngle(t *testing.T) {
	angle := Vec2{6, 0}.SignedAngle(Vec2{0, 1.5})
	assert.InDelta(t, math.Pi/2, angle, Epsilon)

	angle = Vec2{0, -8}.SignedAngle(Vec2{-2, -2})
	assert.InDelta(t, -math.Pi/4, angle, Epsilon)
}
