// Command knuckleballd runs the object-server dispatcher, either as a
// TCP listener or as a local read-eval-print loop over stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at release time; development builds report "dev".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "knuckleballd",
	Short: "Run the knuckleball object-server dispatcher",
}

func main() {
	rootCmd.AddCommand(runCmd, replCmd, versionCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
