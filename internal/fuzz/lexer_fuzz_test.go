package fuzztests

import (
	"testing"

	"felix/internal/diag"
	"felix/internal/lexer"
	"felix/internal/source"
	"felix/internal/testkit"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.fx", input))

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokenCoverage(tokens, file.Content); err != nil {
			t.Fatalf("%v\ninput: %q", err, input)
		}
	})
}
