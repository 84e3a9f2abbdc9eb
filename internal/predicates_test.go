package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1.0, 1.0))
	assert.True(t, Equal(1.0, 1.0+Epsilon/2))
	assert.False(t, Equal(1.0, 1.0+Epsilon*2))
}

func TestShoelace(t *testing.T) {
	s := Shoelace(Vec2{3, 4.5}, Vec2{-2, 0.25}, Vec2{8, -3.75})
	assert.InDelta(t, 62.5, s, Epsilon)
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, CW, Orientation(Vec2{0, 8}, Vec2{2, -1}, Vec2{1, -5}))
	assert.True(t, IsCW(Vec2{0, 8}, Vec2{2, -1}, Vec2{1, -5}))

	assert.Equal(t, CCW, Orientation(Vec2{-2, -1}, Vec2{4, 1}, Vec2{-3, 2}))
	assert.True(t, IsCCW(Vec2{-2, -1}, Vec2{4, 1}, Vec2{-3, 2}))

	assert.Equal(t, Straight, Orientation(Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 2}))
}

func TestInCircleViolated(t *testing.T) {
	// A convex quad triangulated on the wrong diagonal: (6, 6) sits well
	// inside the circumcircle of the big right triangle.
	points := []Vec2{{0, 0}, {10, 0}, {6, 6}, {0, 10}}

	t.Run("bad diagonal", func(t *testing.T) {
		assert.True(t, InCircleViolated(Triangle{0, 1, 3}, Triangle{1, 2, 3}, points))
	})

	t.Run("orientation of the first triangle flips the sign", func(t *testing.T) {
		// Same quad, first triangle stored clockwise; the verdict must not
		// change.
		assert.True(t, InCircleViolated(Triangle{0, 3, 1}, Triangle{1, 2, 3}, points))
	})

	t.Run("good diagonal", func(t *testing.T) {
		assert.False(t, InCircleViolated(Triangle{0, 1, 2}, Triangle{0, 2, 3}, points))
		assert.False(t, InCircleViolated(Triangle{0, 2, 3}, Triangle{0, 1, 2}, points))
	})

	t.Run("not adjacent", func(t *testing.T) {
		assert.False(t, InCircleViolated(Triangle{0, 1, 2}, Triangle{0, 1, 2}, points))
		hexPoints := []Vec2{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
		assert.False(t, InCircleViolated(Triangle{0, 1, 3}, Triangle{2, 4, 5}, hexPoints))
	})

	t.Run("cocircular within tolerance", func(t *testing.T) {
		// A perfect square: all four corners on one circle. The tolerance
		// band must keep either diagonal from flipping.
		square := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		assert.False(t, InCircleViolated(Triangle{0, 1, 2}, Triangle{0, 2, 3}, square))
		assert.False(t, InCircleViolated(Triangle{0, 1, 3}, Triangle{1, 2, 3}, square))
	})
}

func TestTriangleSharedEdge(t *testing.T) {
	edge, opposite, ok := Triangle{0, 1, 3}.SharedEdge(Triangle{3, 2, 1})
	assert.True(t, ok)
	assert.ElementsMatch(t, []int{1, 3}, edge[:])
	assert.Equal(t, [2]int{0, 2}, opposite)

	_, _, ok = Triangle{0, 1, 2}.SharedEdge(Triangle{2, 3, 4})
	assert.False(t, ok)

	_, _, ok = Triangle{0, 1, 2}.SharedEdge(Triangle{2, 1, 0})
	assert.False(t, ok)
}

func TestTriangleSameTriangle(t *testing.T) {
	assert.True(t, Triangle{0, 1, 2}.SameTriangle(Triangle{2, 0, 1}))
	assert.False(t, Triangle{0, 1, 2}.SameTriangle(Triangle{0, 1, 3}))
}
