package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"felix/internal/diagfmt"
	"felix/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] FILE",
	Short: "Tokenize a felix source file",
	Long:  `Tokenize breaks a felix source file (or stdin with "-") into tokens, trivia included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|short|json|none)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	diagValue, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	dformat, err := readDiagFormat(diagValue)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == stdinPath {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result = driver.TokenizeSource(cmd.Context(), "<stdin>", content, opts)
	} else {
		result, err = driver.Tokenize(cmd.Context(), filePath, opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// диагностика лексера идёт в stderr, токены в stdout
	if err := writeDiagnostics(cmd, os.Stderr, dformat, result.Bag, result.FileSet); err != nil {
		return err
	}

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return exitError{code: 1}
	}
	return nil
}
