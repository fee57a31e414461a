// Package cli provides the command-line interface for chromat.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmarchant/chromat/internal/version"
)

var (
	// Global flags
	rootVerbose bool
	rootQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chromat",
		Short: "A small interactive colour palette generator",
		Long: `Chromat generates colour palettes, lets you inspect and rename the
swatches, and exports the result as JSON.

Palettes can be fully random, hue-rotated around a base colour, or seeded
from an image. Each swatch gets a generated name you can change before
exporting.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(shadesCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(renameCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
