package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"felix/internal/diag"
	"felix/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first fix in source order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies the first fix of every diagnostic, skipping conflicts.
	ApplyModeAll
)

// ApplyOptions configures how fixes are selected and written.
type ApplyOptions struct {
	Mode ApplyMode
	// DryRun computes new contents without touching the disk.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	EditCount int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Path   string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts,
// and applies them to the files of fs.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)
	if opts.Mode == ApplyModeOnce {
		candidates = candidates[:1]
	}

	applied, skipped, changes := applyCandidates(fs, candidates, opts)
	result.Applied = applied
	result.Skipped = skipped
	if len(applied) == 0 {
		return result, ErrNoFixes
	}

	if !opts.DryRun {
		for _, change := range changes {
			if err := writeFile(change.Path, change.Content); err != nil {
				return result, err
			}
			result.FileChanges = append(result.FileChanges, change)
		}
		return result, nil
	}
	result.FileChanges = changes
	return result, nil
}

// gatherCandidates берёт первый fix каждой диагностики с правками.
func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0)
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, order: len(cands)})
			break
		}
	}
	return cands
}

// sortCandidates orders candidates by file, span start, span end and
// insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

func applyCandidates(fs *source.FileSet, selected []candidate, opts ApplyOptions) ([]AppliedFix, []SkippedFix, []FileChange) {
	accepted := make(map[source.FileID][]diag.FixEdit)
	var order []source.FileID

	applied := make([]AppliedFix, 0, len(selected))
	skipped := make([]SkippedFix, 0)

	for _, cand := range selected {
		path := fs.Get(cand.diag.Primary.File).Path
		if reason := checkEdits(fs, cand.fix.Edits, accepted, opts); reason != "" {
			skipped = append(skipped, SkippedFix{Title: cand.fix.Title, Path: path, Reason: reason})
			continue
		}
		for _, edit := range cand.fix.Edits {
			if _, seen := accepted[edit.Span.File]; !seen {
				order = append(order, edit.Span.File)
			}
			accepted[edit.Span.File] = append(accepted[edit.Span.File], edit)
		}
		applied = append(applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			Path:      path,
			EditCount: len(cand.fix.Edits),
		})
	}

	changes := make([]FileChange, 0, len(order))
	for _, id := range order {
		file := fs.Get(id)
		changes = append(changes, FileChange{
			Path:      file.Path,
			EditCount: len(accepted[id]),
			Content:   applyEdits(file.Content, accepted[id]),
		})
	}
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return applied, skipped, changes
}

// checkEdits возвращает причину пропуска или "" если правки можно применить.
func checkEdits(fs *source.FileSet, edits []diag.FixEdit, accepted map[source.FileID][]diag.FixEdit, opts ApplyOptions) string {
	for _, edit := range edits {
		if int(edit.Span.File) >= fs.Len() {
			return "edit targets an unknown file"
		}
		file := fs.Get(edit.Span.File)
		if file.Flags&source.FileVirtual != 0 && !opts.DryRun {
			return "target file is virtual"
		}
		if edit.Span.End < edit.Span.Start || edit.Span.End > file.Len() {
			return "edit span out of range"
		}
		for _, prev := range accepted[edit.Span.File] {
			if spansConflict(prev.Span, edit.Span) {
				return "conflicts with a previously applied edit"
			}
		}
	}
	return ""
}

// spansConflict reports whether two edit spans overlap.
// Spans are half-open intervals [Start, End). Two insertions never conflict;
// an insertion conflicts with a non-empty span that strictly contains its position.
func spansConflict(a, b source.Span) bool {
	if a.Empty() && b.Empty() {
		return false
	}
	if a.Empty() {
		return b.Start < a.Start && a.Start < b.End
	}
	if b.Empty() {
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// applyEdits applies non-overlapping edits to a copy of content, from the end
// backwards so that earlier offsets stay valid. Insertions at the same offset
// keep their order.
func applyEdits(content []byte, edits []diag.FixEdit) []byte {
	sorted := append([]diag.FixEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start > sorted[j].Span.Start
	})
	out := append([]byte(nil), content...)
	for i := 0; i < len(sorted); {
		// группа вставок в одной точке применяется одним куском в исходном порядке
		j := i
		var text []byte
		for j < len(sorted) && sorted[j].Span.Start == sorted[i].Span.Start {
			j++
		}
		group := sorted[i:j]
		for _, e := range group {
			text = append(text, e.NewText...)
		}
		start, end := group[0].Span.Start, group[0].Span.Start
		for _, e := range group {
			end = max(end, e.Span.End)
		}
		tail := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], text...), tail...)
		i = j
	}
	return out
}

func writeFile(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
