package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newConfigTestCmd() (root, parse *cobra.Command) {
	root = &cobra.Command{Use: "felix"}
	pf := root.PersistentFlags()
	pf.Int("max-diagnostics", 100, "")
	pf.String("color", "auto", "")
	addTraceFlags(pf)

	parse = &cobra.Command{Use: "parse", RunE: func(*cobra.Command, []string) error { return nil }}
	parse.Flags().String("format", "tree", "")
	parse.Flags().Int("jobs", 0, "")
	parse.Flags().Bool("cache", false, "")
	parse.Flags().String("ui", "auto", "")
	root.AddCommand(parse)
	return root, parse
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, root, "")

	got, err := findConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("findConfig = %q, want %q", got, want)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[parse]\nformatt = \"json\"\n")
	_, err := loadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "parse.formatt") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestApplyConfigKeepsExplicitFlags(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[diagnostics]
max = 7
color = "off"

[parse]
format = "ast"
jobs = 4
cache = true

[trace]
level = "phase"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	root, parse := newConfigTestCmd()
	if err := parse.ParseFlags([]string{"--jobs", "2", "--color", "on"}); err != nil {
		t.Fatal(err)
	}
	if err := applyConfig(parse, cfg); err != nil {
		t.Fatal(err)
	}

	flags := parse.Flags()
	if got, _ := flags.GetInt("jobs"); got != 2 {
		t.Errorf("jobs = %d, explicit flag must win", got)
	}
	if got, _ := flags.GetString("format"); got != "ast" {
		t.Errorf("format = %q", got)
	}
	if got, _ := flags.GetBool("cache"); !got {
		t.Errorf("cache not applied")
	}
	if got, _ := root.PersistentFlags().GetInt("max-diagnostics"); got != 7 {
		t.Errorf("max-diagnostics = %d", got)
	}
	if got, _ := root.PersistentFlags().GetString("color"); got != "on" {
		t.Errorf("color = %q, explicit flag must win", got)
	}
	if got, _ := root.PersistentFlags().GetString("trace-level"); got != "phase" {
		t.Errorf("trace-level = %q", got)
	}
}

func TestApplyConfigParseSectionOnlyForParse(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[parse]\nformat = \"ast\"\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	tok := &cobra.Command{Use: "tokenize"}
	tok.Flags().String("format", "pretty", "")
	if err := applyConfig(tok, cfg); err != nil {
		t.Fatal(err)
	}
	if got, _ := tok.Flags().GetString("format"); got != "pretty" {
		t.Fatalf("tokenize format = %q", got)
	}
}

func TestApplyConfigBadValue(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[parse]\njobs = 1\n[diagnostics]\nmax = 3\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	bad := "many"
	cfg.Parse.Format = nil
	cfg.Diagnostics.Color = &bad

	root := &cobra.Command{Use: "felix"}
	root.PersistentFlags().Int("color", 0, "")
	if err := applyConfig(root, cfg); err == nil {
		t.Fatal("expected error for a value the flag cannot parse")
	}
}
