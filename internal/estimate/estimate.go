package estimate

import (
	"math"

	"github.com/foundationlab/gofla/internal/layout"
)

// Fixed estimation constants. These are deliberately simplistic linear
// models for early layout comparison, not engineering-grade costing.
const (
	// SteelPerTendonKg is the steel mass assumed per tendon (kg)
	SteelPerTendonKg = 150.0

	// SteelCostPerKg is the unit steel cost (USD/kg)
	SteelCostPerKg = 3.50

	// Complexity score model: base plus per-component increments,
	// clamped to [ComplexityBase, ComplexityMax]
	ComplexityBase      = 2.0
	ComplexityMax       = 10.0
	ComplexityPerTendon = 0.3
	ComplexityPerGrout  = 0.5
)

// Metrics holds derived engineering estimates for a layout.
type Metrics struct {
	TotalSteelKg    float64
	SteelCostUSD    float64
	ComplexityScore float64
}

// Estimate derives steel mass, cost and construction complexity from the
// layout composition. Pure function; safe to re-run after every mutation.
func Estimate(l layout.Layout) Metrics {
	tendons := float64(len(l.Tendons))
	grouts := float64(len(l.GroutConnections))

	steel := tendons * SteelPerTendonKg
	return Metrics{
		TotalSteelKg:    steel,
		SteelCostUSD:    steel * SteelCostPerKg,
		ComplexityScore: math.Min(ComplexityMax, ComplexityBase+tendons*ComplexityPerTendon+grouts*ComplexityPerGrout),
	}
}
