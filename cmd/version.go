package cmd

import (
	"fmt"

	"github.com/foundationlab/gofla/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofla",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofla v%s\n", version.Version)
		fmt.Println("Offshore Wind Foundation Layout Tool")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
