package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) relative to the tree root.
type TextRange struct {
	Start uint32
	End   uint32
}

func (r TextRange) Len() uint32 { return r.End - r.Start }

func (r TextRange) Empty() bool { return r.Start == r.End }

// Contains reports whether other lies inside r.
func (r TextRange) Contains(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// String renders "start..end", the form used by debug trees and errors.
func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
