package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"felix/internal/diagfmt"
	"felix/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE|DIR",
	Short: "Parse felix sources into syntax trees",
	Long: `Parse builds the lossless syntax tree of a file, of stdin ("-"), or of every
*.fx file under a directory. Exits with status 1 when any parse error was produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|errors|ast)")
	parseCmd.Flags().String("diagnostics", "pretty", "diagnostics format on stderr (pretty|short|json|none)")
	parseCmd.Flags().Int("jobs", 0, "max parallel files for directories (0 = GOMAXPROCS)")
	parseCmd.Flags().Bool("cache", false, "reuse parse results from the on-disk cache")
	parseCmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/felix)")
	parseCmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before parsing")
	parseCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

type parseFlags struct {
	format      diagfmt.TreeFormat
	diagnostics diagFormat
	ui          uiMode
	quiet       bool
	timings     bool
}

func readParseFlags(cmd *cobra.Command) (parseFlags, driver.Options, error) {
	var pf parseFlags
	opts, err := driverOptions(cmd)
	if err != nil {
		return pf, opts, err
	}
	pf.timings = opts.Timings

	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return pf, opts, fmt.Errorf("failed to get format flag: %w", err)
	}
	if pf.format, err = diagfmt.ParseTreeFormat(formatValue); err != nil {
		return pf, opts, err
	}
	diagValue, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return pf, opts, fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	if pf.diagnostics, err = readDiagFormat(diagValue); err != nil {
		return pf, opts, err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return pf, opts, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if pf.ui, err = readUIMode(uiValue); err != nil {
		return pf, opts, err
	}
	if pf.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return pf, opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return pf, opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if opts.Cache, err = openCache(cmd); err != nil {
		return pf, opts, err
	}
	return pf, opts, nil
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if !useCache && !clearCache {
		return nil, nil
	}
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}

	var cache *driver.DiskCache
	if dir != "" {
		cache, err = driver.NewDiskCache(dir)
	} else {
		cache, err = driver.OpenDiskCache("felix")
	}
	if err != nil {
		return nil, err
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if !useCache {
		return nil, nil
	}
	return cache, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	flags, opts, err := readParseFlags(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if path == stdinPath {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return reportParse(cmd, flags, []*driver.ParseResult{driver.ParseSource(ctx, "<stdin>", content, opts)}, false)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		res, err := driver.Parse(ctx, path, opts)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		return reportParse(cmd, flags, []*driver.ParseResult{res}, false)
	}

	var results []*driver.ParseResult
	if shouldUseTUI(flags.ui) && !flags.quiet {
		files, err := driver.ListSourceFiles(path)
		if err != nil {
			return err
		}
		_, results, err = runParseDirWithUI(ctx, "felix parse "+path, path, files, opts)
		if err != nil {
			return err
		}
	} else {
		_, results, err = driver.ParseDir(ctx, path, opts)
		if err != nil {
			return err
		}
	}
	return reportParse(cmd, flags, results, true)
}

// reportParse печатает деревья в stdout, диагностику и тайминги в stderr.
func reportParse(cmd *cobra.Command, flags parseFlags, results []*driver.ParseResult, multi bool) error {
	out := cmd.OutOrStdout()
	failed := 0

	if multi && flags.format == diagfmt.TreeFormatJSON {
		trees := make([]diagfmt.TreeOutput, 0, len(results))
		for _, r := range results {
			if r != nil && r.File != nil {
				trees = append(trees, diagfmt.BuildTreeOutput(r.Path, r.Result))
			}
		}
		if err := diagfmt.WriteTreesJSON(out, trees); err != nil {
			return err
		}
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		if r.File == nil {
			// файл не загрузился: у диагностики нет позиции в FileSet
			failed++
			for _, d := range r.Bag.Items() {
				fmt.Fprintf(os.Stderr, "%s: %s %s: %s\n", r.Path, d.Severity, d.Code.ID(), d.Message)
			}
			continue
		}
		if r.HasErrors() {
			failed++
		}

		if !multi || flags.format != diagfmt.TreeFormatJSON {
			if multi && flags.format != diagfmt.TreeFormatErrors {
				fmt.Fprintf(out, "==> %s <==\n", r.Path)
			}
			if err := diagfmt.FormatTree(out, r.Path, r.Result, flags.format); err != nil {
				return err
			}
		}

		if flags.timings && r.Timing != nil && flags.diagnostics == diagJSON {
			driver.AppendTimingDiagnostic(r.Bag, r.File.ID, r.Path, *r.Timing)
		}
		if err := writeDiagnostics(cmd, os.Stderr, flags.diagnostics, r.Bag, r.FileSet); err != nil {
			return err
		}
	}

	if flags.timings && flags.diagnostics != diagJSON {
		printTimings(os.Stderr, results)
	}
	if multi && !flags.quiet {
		fmt.Fprintln(os.Stderr, parseSummary(results, failed))
	}
	if failed > 0 {
		return exitError{code: 1}
	}
	return nil
}

func parseSummary(results []*driver.ParseResult, failed int) string {
	cached := 0
	for _, r := range results {
		if r != nil && r.Cached {
			cached++
		}
	}
	msg := fmt.Sprintf("parsed %d files, %d with errors", len(results), failed)
	if cached > 0 {
		msg += fmt.Sprintf(", %d from cache", cached)
	}
	return msg
}
