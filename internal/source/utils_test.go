package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	target := filepath.Join(tmp, "other", "file.fx")

	if got, want := RelativePath(target, baseDir), filepath.ToSlash(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.fx")

	if got := RelativePath(target, tmp); got != "nested/file.fx" {
		t.Fatalf("expected relative path, got %q", got)
	}
}

func TestToLineColWithoutNewlines(t *testing.T) {
	if got := toLineCol(nil, 7); got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("got %+v", got)
	}
}
