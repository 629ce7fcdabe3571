package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"felix/internal/driver"
	"felix/internal/format"
	"felix/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] FILE|DIR",
	Short: "Print felix sources in canonical form",
	Long:  "Normalize spacing between tokens, keeping comments and at most one blank line between statements.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("write", false, "rewrite files in place")
	fmtCmd.Flags().Bool("check", false, "list files whose formatting differs and exit 1")
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	if write && check {
		return fmt.Errorf("--write and --check are mutually exclusive")
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	files := []string{args[0]}
	if st.IsDir() {
		if files, err = driver.ListSourceFiles(args[0]); err != nil {
			return fmt.Errorf("fmt: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	failed, changed := 0, 0
	fs := source.NewFileSet()
	for _, path := range files {
		id, err := fs.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		file := fs.Get(id)
		formatted, err := format.FormatFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		same := bytes.Equal(formatted, file.Content)
		switch {
		case check:
			if !same {
				fmt.Fprintln(out, path)
				changed++
			}
		case write:
			if same {
				continue
			}
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				return fmt.Errorf("fmt: %w", err)
			}
		default:
			if _, err := out.Write(formatted); err != nil {
				return err
			}
		}
	}
	if failed > 0 || changed > 0 {
		return exitError{code: 1}
	}
	return nil
}
