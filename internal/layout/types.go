package layout

import (
	"time"

	"github.com/foundationlab/gofla/internal/geometry"
)

// FoundationSpec describes the circular foundation cross-section.
// All dimensions are in meters.
type FoundationSpec struct {
	// Outer diameter of the foundation
	Diameter float64 `json:"diameter"`

	// Wall thickness between outer shell and inner bore
	WallThickness float64 `json:"wall_thickness"`
}

// OuterRadius returns the outer radius of the foundation (m).
func (f FoundationSpec) OuterRadius() float64 {
	return f.Diameter / 2
}

// InnerRadius returns the radius of the inner bore (m).
// A degenerate spec (wall thicker than the radius) yields a value <= 0;
// such specs are representable and flagged by the validator, never rejected.
func (f FoundationSpec) InnerRadius() float64 {
	return f.Diameter/2 - f.WallThickness
}

// Placement kinds for tendons. The tag records how a tendon entered the
// layout and has no effect on validation.
const (
	PlacementPattern = "pattern"
	PlacementManual  = "manual"
)

// Tendon is a vertical prestressing steel element, modeled as a circle
// by center and diameter.
type Tendon struct {
	ID int     `json:"id"`
	X  float64 `json:"x"` // m
	Y  float64 `json:"y"` // m

	// Diameter is specified in millimeters. Convert before comparing
	// against meter-denominated radii and clearances.
	Diameter float64 `json:"diameter"` // mm

	// Placement is "pattern" or "manual"
	Placement string `json:"type"`
}

// Center returns the tendon center point.
func (t Tendon) Center() geometry.Point {
	return geometry.Point{X: t.X, Y: t.Y}
}

// Radius returns the tendon radius in meters.
func (t Tendon) Radius() float64 {
	return t.Diameter / 1000 / 2
}

// GroutConnection is a secondary circular component requiring a proximity
// margin from tendons.
type GroutConnection struct {
	ID int     `json:"id"`
	X  float64 `json:"x"` // m
	Y  float64 `json:"y"` // m

	// Diameter is specified in millimeters, like tendon diameters.
	Diameter float64 `json:"diameter"` // mm
}

// Center returns the grout connection center point.
func (g GroutConnection) Center() geometry.Point {
	return geometry.Point{X: g.X, Y: g.Y}
}

// Radius returns the grout connection radius in meters.
func (g GroutConnection) Radius() float64 {
	return g.Diameter / 1000 / 2
}

// AccessShaft is a circular void for personnel access.
// Shafts currently participate in no validation rule.
type AccessShaft struct {
	ID int     `json:"id"`
	X  float64 `json:"x"` // m
	Y  float64 `json:"y"` // m

	// Diameter is specified directly in meters, unlike tendons and grout
	// connections.
	Diameter float64 `json:"diameter"` // m
}

// Center returns the shaft center point.
func (a AccessShaft) Center() geometry.Point {
	return geometry.Point{X: a.X, Y: a.Y}
}

// Radius returns the shaft radius in meters.
func (a AccessShaft) Radius() float64 {
	return a.Diameter / 2
}

// Layout is one complete component arrangement for a foundation design.
// Within each collection, IDs run 0..n-1 after a clear or pattern rebuild;
// manual additions append the next unused index.
type Layout struct {
	Name             string            `json:"name"`
	Tendons          []Tendon          `json:"tendons"`
	GroutConnections []GroutConnection `json:"grout_connections"`
	AccessShafts     []AccessShaft     `json:"access_shafts"`
	Foundation       FoundationSpec    `json:"foundation"`
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	c := l
	c.Tendons = append([]Tendon(nil), l.Tendons...)
	c.GroutConnections = append([]GroutConnection(nil), l.GroutConnections...)
	c.AccessShafts = append([]AccessShaft(nil), l.AccessShafts...)
	return c
}

// Snapshot is an immutable saved copy of a layout.
type Snapshot struct {
	Layout
	SavedAt time.Time `json:"saved_at"`
}
