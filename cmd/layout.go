package cmd

import (
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Foundation layout generation, checking and export",
	Long: `Generate, check and export foundation component layouts.

Subcommands:
  generate - Place tendons in a circular pattern and check the result
  check    - Validate a layout JSON file and print estimates
  export   - Write the tendon schedule of a layout file as CSV

Layout files are JSON documents holding the foundation parameters and the
tendon, grout connection and access shaft collections.`,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
