// Package cli implements the holdscan command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is the application version.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "holdscan",
	Short:   "Climbing hold detection service and toolkit",
	Version: Version,
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
