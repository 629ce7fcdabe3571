package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"felix/internal/driver"
)

const replPrompt = ">>> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read lines and print their syntax trees",
	Long:  `Repl parses every input line on its own and prints the debug tree with parse errors`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in := cmd.InOrStdin()
		prompt := false
		if f, ok := in.(*os.File); ok {
			prompt = isTerminal(f)
		}
		return runREPL(cmd.Context(), in, cmd.OutOrStdout(), prompt)
	},
}

// runREPL читает строки до EOF; приглашение печатается только если prompt.
func runREPL(ctx context.Context, in io.Reader, out io.Writer, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if prompt {
			fmt.Fprint(out, replPrompt)
		}
		if !sc.Scan() {
			break
		}
		res := driver.ParseSource(ctx, "<repl>", sc.Bytes(), driver.Options{})
		fmt.Fprintln(out, res.Result.DebugTree())
	}
	if prompt {
		fmt.Fprintln(out)
	}
	return sc.Err()
}
