// Package main implements the gulptsc CLI, a thin inspection and build
// front-end over the configuration-resolution pipeline.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Yugloocamai/gulp-typescript/internal/version"

	// Register the bundled compiler implementation as the default.
	_ "github.com/Yugloocamai/gulp-typescript/internal/compiler/native"
)

var rootCmd = &cobra.Command{
	Use:   "gulptsc",
	Short: "TypeScript project configuration resolver",
	Long:  `gulptsc resolves TypeScript build configurations and drives the resulting project handle`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(buildCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
