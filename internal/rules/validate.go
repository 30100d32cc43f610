package rules

import (
	"fmt"

	"github.com/foundationlab/gofla/internal/geometry"
	"github.com/foundationlab/gofla/internal/layout"
)

// Finding is one reported rule failure.
type Finding struct {
	// Rule names the rule family that fired
	Rule string

	// IDs of the components involved, in reporting order
	IDs []int

	// Shortfall is how far (m) the layout misses the rule's limit
	Shortfall float64

	// Message is the human-readable description
	Message string
}

// ValidationResult collects violations and warnings for one layout.
// The two lists are independent: a layout can carry only warnings, only
// violations, both, or neither.
type ValidationResult struct {
	Violations []Finding
	Warnings   []Finding
}

// OK reports whether the layout passed every rule.
func (r ValidationResult) OK() bool {
	return len(r.Violations) == 0 && len(r.Warnings) == 0
}

// Validate runs all constraint rules over a layout. It is a pure function
// of its input: calling it twice on an unchanged layout yields identical
// results, and rule families are evaluated in a fixed order so findings
// come out deterministically ordered.
//
// Rule families:
//  1. Foundation sanity: a non-positive inner radius is flagged; the
//     remaining rules still run without dividing by zero.
//  2. Containment: each tendon must fit entirely within the inner bore.
//  3. Tendon-tendon clearance: every unordered pair needs
//     MinTendonClearance of edge-to-edge separation. All pairs are
//     checked directly; counts are capped at 24 by the input ranges, so
//     no spatial indexing is warranted.
//  4. Grout-tendon proximity: warning-level, looser margin.
//
// Access shafts participate in no rule. That is a known gap, not an
// oversight in this function.
func Validate(l layout.Layout) ValidationResult {
	var result ValidationResult

	innerRadius := l.Foundation.InnerRadius()
	if innerRadius <= 0 {
		result.Violations = append(result.Violations, Finding{
			Rule:      RuleFoundation,
			Shortfall: -innerRadius,
			Message: fmt.Sprintf("Inner radius is not positive (diameter %.2f m, wall %.2f m)",
				l.Foundation.Diameter, l.Foundation.WallThickness),
		})
	}

	// Containment: radial offset plus tendon radius against the inner bore.
	// Tendon diameters are mm; Radius() converts to m.
	for _, t := range l.Tendons {
		extent := geometry.RadialOffset(t.Center()) + t.Radius()
		if extent > innerRadius {
			result.Violations = append(result.Violations, Finding{
				Rule:      RuleContainment,
				IDs:       []int{t.ID},
				Shortfall: extent - innerRadius,
				Message: fmt.Sprintf("Tendon T%d too close to wall (extent %.2f m > %.2f m bore radius)",
					t.ID, extent, innerRadius),
			})
		}
	}

	// Tendon-tendon clearance over all unordered pairs, each reported once.
	for i := 0; i < len(l.Tendons); i++ {
		for j := i + 1; j < len(l.Tendons); j++ {
			t1, t2 := l.Tendons[i], l.Tendons[j]
			dist := geometry.Distance(t1.Center(), t2.Center())
			required := t1.Radius() + t2.Radius() + MinTendonClearance
			if dist < required {
				result.Violations = append(result.Violations, Finding{
					Rule:      RuleClearance,
					IDs:       []int{t1.ID, t2.ID},
					Shortfall: required - dist,
					Message: fmt.Sprintf("Tendons T%d and T%d too close (%.2f m < %.2f m required)",
						t1.ID, t2.ID, dist, required),
				})
			}
		}
	}

	// Grout-tendon proximity is advisory only.
	for _, g := range l.GroutConnections {
		for _, t := range l.Tendons {
			dist := geometry.Distance(g.Center(), t.Center())
			required := g.Radius() + t.Radius() + GroutProximityMargin
			if dist < required {
				result.Warnings = append(result.Warnings, Finding{
					Rule:      RuleProximity,
					IDs:       []int{g.ID, t.ID},
					Shortfall: required - dist,
					Message: fmt.Sprintf("Grout G%d near Tendon T%d (%.2f m < %.2f m margin)",
						g.ID, t.ID, dist, required),
				})
			}
		}
	}

	return result
}
