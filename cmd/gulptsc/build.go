package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	gulpts "github.com/Yugloocamai/gulp-typescript"
	"github.com/Yugloocamai/gulp-typescript/internal/build"
	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

var (
	buildSettingsPath string
	buildList         bool
)

func init() {
	buildCmd.Flags().StringVar(&buildSettingsPath, "settings", "", "TOML settings file merged below the project file")
	buildCmd.Flags().BoolVar(&buildList, "list", false, "list output paths without writing files")
}

var buildCmd = &cobra.Command{
	Use:   "build [tsconfig]",
	Short: "Resolve a configuration and run one build",
	Long:  "Resolve the project configuration, invoke the build handle once, and write its output stream to disk.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  buildExecution,
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// cliReporter prints per-file diagnostics as they arrive and keeps the final
// summary for the command's exit line.
type cliReporter struct {
	mu      sync.Mutex
	results build.Results
	errs    int
}

func (r *cliReporter) Error(d diag.Diagnostic, impl compiler.Impl) {
	r.mu.Lock()
	r.errs++
	r.mu.Unlock()
	fmt.Fprintln(os.Stderr, impl.FormatDiagnostic(d))
}

func (r *cliReporter) Finish(res build.Results) {
	r.mu.Lock()
	r.results = res
	r.mu.Unlock()
}

func buildExecution(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	useColor, err := readColorMode(cmd, os.Stdout)
	if err != nil {
		return err
	}
	s, err := loadSettingsFile(buildSettingsPath)
	if err != nil {
		return err
	}

	var proj *gulpts.Project
	if len(args) == 1 {
		proj, err = gulpts.NewProjectFromFile(args[0], s)
	} else {
		proj, err = gulpts.NewProject(s)
	}
	if err != nil {
		return err
	}

	reporter := &cliReporter{}
	stream := proj.Compile(reporter)

	written := 0
	for file := range stream.Files() {
		if buildList {
			fmt.Fprintln(cmd.OutOrStdout(), file.Path)
			continue
		}
		if err := writeOutput(file); err != nil {
			return err
		}
		written++
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", file.Path)
		}
	}
	if err := stream.Wait(); err != nil {
		return err
	}

	if !quiet {
		printBuildSummary(cmd, reporter, written, useColor)
	}
	if reporter.errs > 0 {
		return fmt.Errorf("build finished with %d error(s)", reporter.errs)
	}
	return nil
}

func writeOutput(file gulpts.OutputFile) error {
	if err := os.MkdirAll(filepath.Dir(file.Path), 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(file.Path, file.Content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", file.Path, err)
	}
	return nil
}

func printBuildSummary(cmd *cobra.Command, reporter *cliReporter, written int, useColor bool) {
	reporter.mu.Lock()
	res := reporter.results
	errs := reporter.errs
	reporter.mu.Unlock()

	line := fmt.Sprintf("%d file(s) in, %d out, %d error(s), %s", res.Files, written, errs, res.Duration.Round(time.Millisecond))
	if useColor {
		style := okStyle
		if errs > 0 {
			style = failStyle
		}
		line = style.Render(line)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
