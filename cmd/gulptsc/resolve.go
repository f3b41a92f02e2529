package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
	"github.com/Yugloocamai/gulp-typescript/internal/diagfmt"
	"github.com/Yugloocamai/gulp-typescript/internal/resolve"
)

var (
	resolveSettingsPath string
	resolveFormat       string
)

func init() {
	resolveCmd.Flags().StringVar(&resolveSettingsPath, "settings", "", "TOML settings file merged below the project file")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "pretty", "output format (pretty|json)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [tsconfig]",
	Short: "Resolve a project configuration",
	Long:  "Resolve settings and an optional tsconfig file into the final compiler configuration, reporting every diagnostic produced on the way.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  resolveExecution,
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func resolveExecution(cmd *cobra.Command, args []string) error {
	maxDiag, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	useColor, err := readColorMode(cmd, os.Stdout)
	if err != nil {
		return err
	}
	s, err := loadSettingsFile(resolveSettingsPath)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiag)
	pipeline := &resolve.Pipeline{Reporter: diag.BagReporter{Bag: bag}}

	var res *resolve.Result
	if len(args) == 1 {
		res, err = pipeline.FromFile(args[0], s)
	} else {
		res, err = pipeline.FromSettings(s)
	}
	if err != nil {
		return err
	}
	bag.Sort()

	switch resolveFormat {
	case "json":
		return renderResolvedJSON(cmd, res, bag)
	case "pretty":
		renderResolvedPretty(cmd, res, bag, useColor)
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", resolveFormat)
}

func renderResolvedPretty(cmd *cobra.Command, res *resolve.Result, bag *diag.Bag, useColor bool) {
	out := cmd.OutOrStdout()

	header := fmt.Sprintf("%s %s", res.Compiler.Name(), res.Compiler.Version())
	if res.ConfigPath != "" {
		header += "  " + res.ConfigPath
	}
	if useColor {
		header = titleStyle.Render(header)
	}
	fmt.Fprintln(out, header)

	keys := make([]string, 0, len(res.Options))
	for k := range res.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name := k
		if useColor {
			name = keyStyle.Render(k)
		}
		fmt.Fprintf(out, "  %s = %v\n", name, res.Options[k])
	}

	if res.Parsed != nil {
		line := fmt.Sprintf("%d input file(s)", len(res.Parsed.FileNames))
		if useColor {
			line = dimStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}

	diagfmt.Pretty(cmd.ErrOrStderr(), bag.Items(), res.Compiler, diagfmt.PrettyOpts{
		Color:     useColor,
		ShowNotes: true,
		PathMode:  diagfmt.PathModeRelative,
	})
}

func renderResolvedJSON(cmd *cobra.Command, res *resolve.Result, bag *diag.Bag) error {
	out := cmd.OutOrStdout()
	payload := struct {
		Compiler    string         `json:"compiler"`
		Version     string         `json:"version"`
		Dir         string         `json:"dir"`
		ConfigPath  string         `json:"configPath,omitempty"`
		Options     map[string]any `json:"options"`
		InputFiles  []string       `json:"inputFiles,omitempty"`
		Diagnostics int            `json:"diagnostics"`
	}{
		Compiler:    res.Compiler.Name(),
		Version:     res.Compiler.Version(),
		Dir:         res.Dir,
		ConfigPath:  res.ConfigPath,
		Options:     res.Options,
		Diagnostics: bag.Len(),
	}
	if res.Parsed != nil {
		payload.InputFiles = res.Parsed.FileNames
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if bag.Len() > 0 {
		var sb strings.Builder
		if err := diagfmt.JSON(&sb, bag.Items(), diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
			return err
		}
		fmt.Fprint(cmd.ErrOrStderr(), sb.String())
	}
	return nil
}
