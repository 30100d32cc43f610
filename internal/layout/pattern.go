package layout

import "math"

// GenerateCircularPattern places count tendons evenly on a circle of the
// given radius (m), all with the same diameter (mm). The first tendon sits
// at angle 0 and the spacing is 2π/count, so no tendon coincides with the
// full-turn wrap. IDs are assigned 0..count-1 in generation order.
//
// The caller constrains count and radius to the tool's input ranges; no
// bounds checking against the foundation spec happens here. A generated
// pattern may legally violate containment or clearance rules; catching
// that is the validator's job.
func GenerateCircularPattern(count int, radius, diameterMm float64) []Tendon {
	tendons := make([]Tendon, 0, count)
	for k := 0; k < count; k++ {
		angle := 2 * math.Pi * float64(k) / float64(count)
		tendons = append(tendons, Tendon{
			ID:        k,
			X:         radius * math.Cos(angle),
			Y:         radius * math.Sin(angle),
			Diameter:  diameterMm,
			Placement: PlacementPattern,
		})
	}
	return tendons
}
