package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/foundationlab/gofla/internal/estimate"
	"github.com/foundationlab/gofla/internal/layout"
	"github.com/foundationlab/gofla/internal/rules"
)

// printLayoutReport prints the full engineering report for a layout:
// composition, validation findings and estimates.
func printLayoutReport(l layout.Layout, result rules.ValidationResult, metrics estimate.Metrics) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FOUNDATION LAYOUT ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if l.Name != "" {
		fmt.Printf("  Layout: %s\n", l.Name)
		fmt.Println()
	}

	fmt.Println("FOUNDATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outer diameter:\t%.2f m\n", l.Foundation.Diameter)
	fmt.Fprintf(w, "  Wall thickness:\t%.2f m\n", l.Foundation.WallThickness)
	fmt.Fprintf(w, "  Inner bore radius:\t%.2f m\n", l.Foundation.InnerRadius())
	w.Flush()
	fmt.Println()

	fmt.Println("COMPONENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tendons:\t%d\n", len(l.Tendons))
	fmt.Fprintf(w, "  Grout connections:\t%d\n", len(l.GroutConnections))
	fmt.Fprintf(w, "  Access shafts:\t%d\n", len(l.AccessShafts))
	w.Flush()
	fmt.Println()

	fmt.Println("CONSTRAINT VALIDATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.OK() {
		fmt.Println("  ✓ All constraints satisfied")
	} else {
		if len(result.Violations) > 0 {
			fmt.Printf("  ✗ %d constraint violation(s):\n", len(result.Violations))
			for _, f := range result.Violations {
				fmt.Printf("    • %s\n", f.Message)
			}
		}
		if len(result.Warnings) > 0 {
			fmt.Printf("  ⚠ %d warning(s):\n", len(result.Warnings))
			for _, f := range result.Warnings {
				fmt.Printf("    • %s\n", f.Message)
			}
		}
	}
	fmt.Println()

	fmt.Println("ESTIMATES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total steel:\t%.0f kg\n", metrics.TotalSteelKg)
	fmt.Fprintf(w, "  Steel cost:\t$%.0f\n", metrics.SteelCostUSD)
	fmt.Fprintf(w, "  Complexity score:\t%.1f/10\n", metrics.ComplexityScore)
	w.Flush()
	fmt.Println()
}
