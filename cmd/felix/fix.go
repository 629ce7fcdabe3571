package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"felix/internal/diag"
	"felix/internal/driver"
	"felix/internal/fix"
	"felix/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] FILE|DIR",
	Short: "Insert missing ')' and '=' reported by the parser",
	Long:  "Parse the sources, collect the fixes attached to parse errors and apply them in place.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting fix (default: only the first)")
	fixCmd.Flags().Bool("dry-run", false, "print fixed sources instead of writing them")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	opts := fix.ApplyOptions{Mode: fix.ApplyModeOnce, DryRun: dryRun}
	if applyAll {
		opts.Mode = fix.ApplyModeAll
	}

	driverOpts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	var (
		fs          *source.FileSet
		diagnostics []diag.Diagnostic
	)
	if info.IsDir() {
		var results []*driver.ParseResult
		fs, results, err = driver.ParseDir(cmd.Context(), targetPath, driverOpts)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
		for _, r := range results {
			if r == nil || r.File == nil {
				continue
			}
			diagnostics = append(diagnostics, r.Bag.Items()...)
		}
	} else {
		res, err := driver.Parse(cmd.Context(), targetPath, driverOpts)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
		fs = res.FileSet
		diagnostics = res.Bag.Items()
	}

	res, applyErr := fix.Apply(fs, diagnostics, opts)
	if err := printApplyResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, dryRun); err != nil {
		return err
	}
	if errors.Is(applyErr, fix.ErrNoFixes) {
		fmt.Fprintln(cmd.ErrOrStderr(), "fix: nothing to do")
		return nil
	}
	return applyErr
}

// printApplyResult: при --dry-run исходники идут в out, сводка всегда в log.
func printApplyResult(out, log io.Writer, res *fix.ApplyResult, dryRun bool) error {
	if res == nil {
		return nil
	}
	for _, item := range res.Applied {
		if _, err := fmt.Fprintf(log, "applied %s at %s (%s: %s)\n", item.Title, item.Path, item.Code.ID(), item.Message); err != nil {
			return err
		}
	}
	for _, skip := range res.Skipped {
		if _, err := fmt.Fprintf(log, "skipped %s at %s: %s\n", skip.Title, skip.Path, skip.Reason); err != nil {
			return err
		}
	}
	for _, change := range res.FileChanges {
		if !dryRun {
			if _, err := fmt.Fprintf(log, "updated %s (%d edits)\n", change.Path, change.EditCount); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "==> %s <==\n%s\n", change.Path, change.Content); err != nil {
			return err
		}
	}
	return nil
}
