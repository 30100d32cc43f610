package cmd

import (
	"fmt"

	"github.com/foundationlab/gofla/internal/config"
	"github.com/foundationlab/gofla/internal/diagram"
	"github.com/foundationlab/gofla/internal/estimate"
	"github.com/foundationlab/gofla/internal/layout"
	"github.com/foundationlab/gofla/internal/rules"
	"github.com/spf13/cobra"
)

var (
	generateConfigFile    string
	generateName          string
	generateFoundationDia float64
	generateWallThickness float64
	generateCount         int
	generateRadius        float64
	generateDiameterMm    float64
	generateShowDiagram   bool
	generateExportFile    string
	generateSaveFile      string
)

var layoutGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a circular tendon pattern and check it",
	Long: `Place tendons evenly on a circle inside the foundation, then run the
constraint validator and metric estimator on the result.

The pattern replaces any previous tendon collection. A generated pattern may
legally violate constraints (for example, a radius too large for the wall
thickness); the validation section of the report will say so.

Examples:
  gofla layout generate --count 8 --radius 4.0 --tendon-diameter 150
  gofla layout generate -n 12 -r 3.5 --foundation-diameter 12 --save ring12.json`,
	RunE: runLayoutGenerate,
}

func init() {
	layoutCmd.AddCommand(layoutGenerateCmd)

	layoutGenerateCmd.Flags().StringVar(&generateConfigFile, "config", "", "Path to TOML config with defaults and input ranges")
	layoutGenerateCmd.Flags().StringVar(&generateName, "name", "Layout 1", "Layout name")
	layoutGenerateCmd.Flags().Float64Var(&generateFoundationDia, "foundation-diameter", 0, "Foundation outer diameter (m), config default if omitted")
	layoutGenerateCmd.Flags().Float64Var(&generateWallThickness, "wall-thickness", 0, "Foundation wall thickness (m), config default if omitted")
	layoutGenerateCmd.Flags().IntVarP(&generateCount, "count", "n", 8, "Number of tendons [4-24]")
	layoutGenerateCmd.Flags().Float64VarP(&generateRadius, "radius", "r", 4.0, "Pattern radius from center (m)")
	layoutGenerateCmd.Flags().Float64Var(&generateDiameterMm, "tendon-diameter", 150, "Tendon diameter (mm)")
	layoutGenerateCmd.Flags().BoolVar(&generateShowDiagram, "diagram", false, "Show ASCII plan view")
	layoutGenerateCmd.Flags().StringVarP(&generateExportFile, "output", "o", "", "Export plan diagram to file (png, svg, pdf)")
	layoutGenerateCmd.Flags().StringVar(&generateSaveFile, "save", "", "Write the generated layout to a JSON file")
}

func runLayoutGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg := config.Default()
	if generateConfigFile != "" {
		var err error
		cfg, err = config.Load(generateConfigFile)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", generateConfigFile)
	}

	spec := layout.FoundationSpec{
		Diameter:      cfg.Foundation.Diameter,
		WallThickness: cfg.Foundation.WallThickness,
	}
	if cmd.Flags().Changed("foundation-diameter") {
		spec.Diameter = cfg.Inputs.FoundationDiameter.Clamp(generateFoundationDia)
	}
	if cmd.Flags().Changed("wall-thickness") {
		spec.WallThickness = cfg.Inputs.WallThickness.Clamp(generateWallThickness)
	}

	// The core assumes pre-constrained inputs; ranges are enforced here.
	count := cfg.Inputs.TendonCount.Clamp(generateCount)
	radius := cfg.Inputs.PatternRadius.Clamp(generateRadius)
	diameter := cfg.Inputs.TendonDiameter.Clamp(generateDiameterMm)
	if count != generateCount || radius != generateRadius || diameter != generateDiameterMm {
		logger.Warn("inputs clamped to configured ranges",
			"count", count, "radius", radius, "diameter", diameter)
	}

	store := layout.NewStore(spec)
	store.SetName(generateName)
	store.GeneratePattern(count, radius, diameter)
	logger.Debug("generated pattern", "count", count, "radius", radius)

	l := store.Current()
	result := rules.Validate(l)
	metrics := estimate.Estimate(l)

	printLayoutReport(l, result, metrics)

	if generateShowDiagram {
		fmt.Println(diagram.DrawPlanView(l))
	}

	if generateExportFile != "" {
		if err := diagram.ExportPlanDiagram(l, generateExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		logger.Info("diagram exported", "path", generateExportFile)
	}

	if generateSaveFile != "" {
		if err := layout.SaveToFile(l, generateSaveFile); err != nil {
			return fmt.Errorf("saving layout: %w", err)
		}
		logger.Info("layout saved", "path", generateSaveFile)
	}

	return nil
}
