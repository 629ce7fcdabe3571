package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"felix/internal/ast"
	"felix/internal/parser"
	"felix/internal/syntax"
)

// TreeFormat selects how a parse result is printed.
type TreeFormat uint8

const (
	TreeFormatDebug TreeFormat = iota
	TreeFormatJSON
	TreeFormatErrors
	TreeFormatAST
)

// ParseTreeFormat maps a --format value onto a TreeFormat.
func ParseTreeFormat(s string) (TreeFormat, error) {
	switch s {
	case "", "tree":
		return TreeFormatDebug, nil
	case "json":
		return TreeFormatJSON, nil
	case "errors":
		return TreeFormatErrors, nil
	case "ast":
		return TreeFormatAST, nil
	}
	return 0, fmt.Errorf("unknown tree format %q (want tree|json|errors|ast)", s)
}

// TreeNodeJSON - узел или токен дерева в JSON.
type TreeNodeJSON struct {
	Kind     string         `json:"kind"`
	Start    uint32         `json:"start"`
	End      uint32         `json:"end"`
	Text     *string        `json:"text,omitempty"`
	Children []TreeNodeJSON `json:"children,omitempty"`
}

type ParseErrorJSON struct {
	Message  string   `json:"message"`
	Start    uint32   `json:"start"`
	End      uint32   `json:"end"`
	Expected []string `json:"expected"`
	Found    string   `json:"found,omitempty"`
}

type TreeOutput struct {
	Path   string           `json:"path"`
	Root   TreeNodeJSON     `json:"root"`
	Errors []ParseErrorJSON `json:"errors"`
}

// BuildTreeOutput converts a parse result into its JSON shape.
func BuildTreeOutput(path string, res *parser.Result) TreeOutput {
	out := TreeOutput{
		Path:   path,
		Root:   treeNodeJSON(res.Syntax()),
		Errors: make([]ParseErrorJSON, 0, len(res.Errors())),
	}
	for _, e := range res.Errors() {
		ej := ParseErrorJSON{
			Message:  e.String(),
			Start:    e.Range.Start,
			End:      e.Range.End,
			Expected: make([]string, 0, len(e.Expected)),
		}
		for _, k := range e.Expected {
			ej.Expected = append(ej.Expected, k.String())
		}
		if e.Found != syntax.EOF {
			ej.Found = e.Found.String()
		}
		out.Errors = append(out.Errors, ej)
	}
	return out
}

func treeNodeJSON(n *syntax.Node) TreeNodeJSON {
	r := n.TextRange()
	out := TreeNodeJSON{Kind: n.Kind().String(), Start: r.Start, End: r.End}
	for _, el := range n.ChildrenWithTokens() {
		switch el := el.(type) {
		case *syntax.Node:
			out.Children = append(out.Children, treeNodeJSON(el))
		case *syntax.Token:
			tr := el.TextRange()
			text := el.Text()
			out.Children = append(out.Children, TreeNodeJSON{
				Kind:  el.Kind().String(),
				Start: tr.Start,
				End:   tr.End,
				Text:  &text,
			})
		}
	}
	return out
}

// FormatTree печатает результат разбора в выбранном формате.
// Для TreeFormatDebug и TreeFormatErrors вывод совпадает с Result.DebugTree() (или только ошибки).
func FormatTree(w io.Writer, path string, res *parser.Result, format TreeFormat) error {
	switch format {
	case TreeFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(BuildTreeOutput(path, res))
	case TreeFormatErrors:
		for _, e := range res.Errors() {
			if _, err := fmt.Fprintf(w, "%s: %s\n", path, e.String()); err != nil {
				return err
			}
		}
		return nil
	case TreeFormatAST:
		root, _ := ast.CastRoot(res.Syntax())
		text := ast.Format(root)
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, text)
		return err
	default:
		_, err := fmt.Fprintln(w, res.DebugTree())
		return err
	}
}

// WriteTreesJSON печатает результаты нескольких файлов одним JSON-массивом.
func WriteTreesJSON(w io.Writer, trees []TreeOutput) error {
	if trees == nil {
		trees = []TreeOutput{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(trees)
}
