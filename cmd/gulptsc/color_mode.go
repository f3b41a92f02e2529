package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// readColorMode resolves the --color flag into a concrete decision for the
// given output file.
func readColorMode(cmd *cobra.Command, out *os.File) (bool, error) {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, err
	}
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(out), nil
	}
	return false, fmt.Errorf("invalid --color value %q (must be auto, on or off)", value)
}
