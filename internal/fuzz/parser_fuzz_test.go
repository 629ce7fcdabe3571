package fuzztests

import (
	"testing"
	"time"

	"felix/internal/diag"
	"felix/internal/lexer"
	"felix/internal/parser"
	"felix/internal/source"
	"felix/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserLossless(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.fx", input))

		bag := diag.NewBag(128)
		res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTreeInvariants(res.Syntax(), string(file.Content)); err != nil {
			t.Fatalf("%v\ninput: %q", err, input)
		}
		for _, e := range res.Errors() {
			if e.Range.End > file.Len() {
				t.Fatalf("error %s outside input of %d bytes", e.String(), file.Len())
			}
		}
	})
}

// FuzzParserNoHang checks that event generation always terminates: every
// loop in the grammar either consumes a token or stops at a recovery point.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("let let let"))
	f.Add([]byte(")))))"))
	f.Add([]byte("((((((((((1"))
	f.Add([]byte("- - - - -"))
	f.Add([]byte("let x = let y = let"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.fx", input))
			tokens := parser.FromLexed(lexer.Tokenize(file, lexer.Options{}))
			_ = parser.Build(tokens, parser.Events(tokens), nil)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
