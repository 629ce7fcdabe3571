package source

import "testing"

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{1, 2, 4}, Span{1, 6, 9}, Span{1, 2, 9}},
		{"nested", Span{1, 0, 10}, Span{1, 3, 4}, Span{1, 0, 10}},
		{"other file ignored", Span{1, 2, 4}, Span{2, 0, 9}, Span{1, 2, 4}},
		{"empty spans", Span{0, 3, 3}, Span{0, 5, 5}, Span{0, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{File: 0, Start: 2, End: 8}
	if !outer.Contains(Span{File: 0, Start: 2, End: 8}) {
		t.Error("span must contain itself")
	}
	if !outer.Contains(Span{File: 0, Start: 8, End: 8}) {
		t.Error("empty span at the end is contained")
	}
	if outer.Contains(Span{File: 0, Start: 1, End: 3}) {
		t.Error("overlapping span is not contained")
	}
	if outer.Contains(Span{File: 1, Start: 3, End: 4}) {
		t.Error("span from another file is not contained")
	}
}

func TestSpan_Helpers(t *testing.T) {
	sp := Span{File: 3, Start: 4, End: 9}
	if sp.Len() != 5 || sp.Empty() {
		t.Errorf("Len/Empty wrong for %v", sp)
	}
	if got := sp.ZeroideToEnd(); got != (Span{File: 3, Start: 9, End: 9}) || !got.Empty() {
		t.Errorf("ZeroideToEnd = %+v", got)
	}
	if got := sp.ShiftRight(2); got != (Span{File: 3, Start: 6, End: 11}) {
		t.Errorf("ShiftRight = %+v", got)
	}
	if sp.String() != "3:4-9" || sp.Range() != "4..9" {
		t.Errorf("String/Range = %q/%q", sp.String(), sp.Range())
	}
}
