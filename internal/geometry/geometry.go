package geometry

import "math"

// Point represents a 2D coordinate in the foundation plan view (meters).
// The origin is the center of the foundation cross-section.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// RadialOffset returns the distance of a point from the foundation center.
func RadialOffset(p Point) float64 {
	return math.Hypot(p.X, p.Y)
}

// Circle represents a circular component footprint by center and radius (meters).
type Circle struct {
	Center Point
	Radius float64
}

// ContainedIn reports whether c lies entirely within the circle of radius r
// centered at the origin.
func (c Circle) ContainedIn(r float64) bool {
	return RadialOffset(c.Center)+c.Radius <= r
}

// Clearance returns the edge-to-edge distance between two circles.
// Negative values mean the circles overlap.
func Clearance(a, b Circle) float64 {
	return Distance(a.Center, b.Center) - a.Radius - b.Radius
}

// Overlaps reports whether two circles intersect or touch.
func Overlaps(a, b Circle) bool {
	return Clearance(a, b) <= 0
}
