package cmd

import (
	"fmt"
	"os"

	"github.com/foundationlab/gofla/internal/layout"
	"github.com/spf13/cobra"
)

var (
	exportFile   string
	exportOutput string
)

var layoutExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the tendon schedule of a layout file as CSV",
	Long: `Export the tendon collection of a layout JSON file as CSV text with
columns id,x,y,diameter,type, one row per tendon in collection order.

Writes to stdout unless --output is given.

Examples:
  gofla layout export --file ring8.json
  gofla layout export -f ring8.json -o ring8_tendons.csv`,
	RunE: runLayoutExport,
}

func init() {
	layoutCmd.AddCommand(layoutExportCmd)

	layoutExportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to layout JSON file [required]")
	layoutExportCmd.MarkFlagRequired("file")

	layoutExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write CSV to file instead of stdout")
}

func runLayoutExport(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	l, err := layout.LoadFromFile(exportFile)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	csvText := layout.TendonsCSV(l.Tendons)

	if exportOutput == "" {
		fmt.Print(csvText)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(csvText), 0644); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	logger.Info("tendon schedule exported", "path", exportOutput, "tendons", len(l.Tendons))
	return nil
}
