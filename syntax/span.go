package syntax

import "fmt"

// Span represents a location range in template source. Lines and columns
// are 1-based; columns count bytes. Offsets are 0-based byte offsets, with
// EndOffset exclusive.
type Span struct {
	StartLine   uint32
	StartCol    uint32
	StartOffset uint32
	EndLine     uint32
	EndCol      uint32
	EndOffset   uint32
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.StartLine, s.StartCol)
}
