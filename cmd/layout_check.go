package cmd

import (
	"fmt"

	"github.com/foundationlab/gofla/internal/diagram"
	"github.com/foundationlab/gofla/internal/estimate"
	"github.com/foundationlab/gofla/internal/layout"
	"github.com/foundationlab/gofla/internal/rules"
	"github.com/spf13/cobra"
)

var (
	checkFile        string
	checkShowDiagram bool
	checkExportFile  string
)

var layoutCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a layout file and print estimates",
	Long: `Run the constraint validator and metric estimator over a layout
defined in a JSON file.

Validation reports containment and tendon clearance problems as violations
and grout proximity problems as warnings. Access shafts are currently not
covered by any rule.

Examples:
  gofla layout check --file ring8.json
  gofla layout check -f ring8.json --diagram -o plan.png`,
	RunE: runLayoutCheck,
}

func init() {
	layoutCmd.AddCommand(layoutCheckCmd)

	layoutCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to layout JSON file [required]")
	layoutCheckCmd.MarkFlagRequired("file")

	layoutCheckCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show ASCII plan view")
	layoutCheckCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export plan diagram to file (png, svg, pdf)")
}

func runLayoutCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	l, err := layout.LoadFromFile(checkFile)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}
	logger.Debug("loaded layout", "path", checkFile, "tendons", len(l.Tendons))

	result := rules.Validate(*l)
	metrics := estimate.Estimate(*l)

	printLayoutReport(*l, result, metrics)

	if checkShowDiagram {
		fmt.Println(diagram.DrawPlanView(*l))
	}

	if checkExportFile != "" {
		if err := diagram.ExportPlanDiagram(*l, checkExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		logger.Info("diagram exported", "path", checkExportFile)
	}

	return nil
}
