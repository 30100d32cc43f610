package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{X: 1, Y: 2}, Point{X: 1, Y: 2}, 0},
		{"unit x", Point{}, Point{X: 1}, 1},
		{"3-4-5 triangle", Point{}, Point{X: 3, Y: 4}, 5},
		{"negative quadrant", Point{X: -1, Y: -1}, Point{X: 2, Y: 3}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Distance(tc.a, tc.b), 1e-12)
			assert.InDelta(t, tc.want, Distance(tc.b, tc.a), 1e-12, "distance must be symmetric")
		})
	}
}

func TestRadialOffset(t *testing.T) {
	assert.Equal(t, 0.0, RadialOffset(Point{}))
	assert.InDelta(t, 5.0, RadialOffset(Point{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, math.Sqrt2, RadialOffset(Point{X: -1, Y: 1}), 1e-12)
}

func TestCircleContainedIn(t *testing.T) {
	c := Circle{Center: Point{X: 3, Y: 0}, Radius: 1}

	assert.True(t, c.ContainedIn(4), "touching from inside counts as contained")
	assert.True(t, c.ContainedIn(5))
	assert.False(t, c.ContainedIn(3.9))
}

func TestClearanceAndOverlaps(t *testing.T) {
	a := Circle{Center: Point{}, Radius: 1}
	b := Circle{Center: Point{X: 3}, Radius: 1}

	assert.InDelta(t, 1.0, Clearance(a, b), 1e-12)
	assert.False(t, Overlaps(a, b))

	b.Center.X = 2
	assert.InDelta(t, 0.0, Clearance(a, b), 1e-12)
	assert.True(t, Overlaps(a, b), "touching circles overlap")

	b.Center.X = 1
	assert.True(t, Overlaps(a, b))
	assert.Less(t, Clearance(a, b), 0.0)
}
