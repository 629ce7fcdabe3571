package version

import (
	"strings"
	"testing"
)

func TestCurrentDefaults(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "  "
	if got := Current().Version; got != "dev" {
		t.Fatalf("empty version = %q, want dev", got)
	}
	Version = " 1.2.3 "
	if got := Current().Version; got != "1.2.3" {
		t.Fatalf("version = %q", got)
	}
}

func TestColorize(t *testing.T) {
	if got := Colorize("0.1.0-dev", false); got != "0.1.0-dev" {
		t.Fatalf("plain = %q", got)
	}
	colored := Colorize("0.1.0-dev", true)
	if !strings.Contains(colored, "\x1b[") || !strings.HasSuffix(colored, "-dev") {
		t.Fatalf("colored = %q", colored)
	}
	if got := Colorize("nightly", true); got != "nightly" {
		t.Fatalf("non-semver must stay as is, got %q", got)
	}
}
