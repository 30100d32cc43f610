package rules

// Geometric design clearances for internal foundation components

const (
	// MinTendonClearance is the minimum edge-to-edge clearance between two
	// prestressing tendons (m). Falling short is a violation.
	MinTendonClearance = 0.3

	// GroutProximityMargin is the additional edge-to-edge margin required
	// between a grout connection and a tendon (m). Falling short is a
	// warning, not a violation.
	GroutProximityMargin = 0.2
)

// Rule identifiers used in findings, in evaluation order.
const (
	RuleFoundation  = "foundation"
	RuleContainment = "containment"
	RuleClearance   = "tendon-clearance"
	RuleProximity   = "grout-proximity"
)
