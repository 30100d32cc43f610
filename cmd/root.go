package cmd

import (
	"fmt"
	"os"

	"github.com/foundationlab/gofla/internal/version"
	"github.com/spf13/cobra"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "gofla",
	Short: "Offshore Wind Foundation Layout Tool",
	Long: `gofla - Go Foundation Layout Analyzer

A CLI tool for placing internal structural components inside a circular
offshore wind foundation cross-section and checking geometric design
constraints.

This tool helps foundation engineers:
  - Generate circular prestressing tendon patterns
  - Check containment and clearance constraints
  - Estimate steel mass, cost and construction complexity
  - Manage named layout snapshots in an interactive session
  - Export plan-view diagrams and tendon schedules`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofla v%-49s║\n", version.Version)
		fmt.Println("  ║   Offshore Wind Foundation Layout Tool                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Interactive design tool for internal foundation component")
		fmt.Println("  placement with real-time constraint validation.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Circular tendon pattern generation")
		fmt.Println("    • Containment and clearance checks")
		fmt.Println("    • Steel mass, cost and complexity estimates")
		fmt.Println("    • Layout snapshots, CSV and diagram export")
		fmt.Println()
		fmt.Println("  Use 'gofla --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}
