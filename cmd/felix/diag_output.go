package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"felix/internal/diag"
	"felix/internal/diagfmt"
	"felix/internal/driver"
	"felix/internal/source"
)

const stdinPath = "-"

type diagFormat string

const (
	diagPretty diagFormat = "pretty"
	diagShort  diagFormat = "short"
	diagJSON   diagFormat = "json"
	diagNone   diagFormat = "none"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch diagFormat(value) {
	case diagPretty, diagShort, diagJSON, diagNone:
		return diagFormat(value), nil
	}
	return "", fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json|none)", value)
}

// driverOptions собирает driver.Options из глобальных флагов.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	pf := cmd.Root().PersistentFlags()
	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := pf.GetBool("timings")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return driver.Options{MaxDiagnostics: maxDiagnostics, Timings: timings}, nil
}

// writeDiagnostics prints bag to w; nothing is written for an empty bag.
func writeDiagnostics(cmd *cobra.Command, w *os.File, format diagFormat, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 || format == diagNone {
		return nil
	}
	bag.Sort()
	switch format {
	case diagShort:
		if out := diag.FormatShortDiagnostics(bag.Items(), fs, false); out != "" {
			fmt.Fprintln(w, out)
		}
		return nil
	case diagJSON:
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, w),
			Context:   1,
			ShowNotes: true,
			ShowFixes: true,
		})
		return nil
	}
}
