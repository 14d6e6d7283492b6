package value

import (
	"strconv"
	"strings"
)

// Segment is one dot-separated part of a path: a bare name followed by zero
// or more bracket indexers, as in "items[0][-1]".
type Segment struct {
	Name    string
	Indices []int
}

// Index reports whether the segment name is itself a signed integer, which
// is how positional placeholders such as "0" or "-1" are addressed.
func (s Segment) Index() (int, bool) {
	return parseIndex(s.Name)
}

// ParsePath splits a path into segments. It reports false for the empty
// path, empty segments, a segment without a bare name ("[0]"), and any
// bracket that does not hold a signed integer.
func ParsePath(path string) ([]Segment, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		seg, ok := parseSegment(part)
		if !ok {
			return nil, false
		}
		segs = append(segs, seg)
	}
	return segs, true
}

func parseSegment(part string) (Segment, bool) {
	open := strings.IndexByte(part, '[')
	name := part
	if open >= 0 {
		name = part[:open]
	}
	if name == "" || strings.IndexByte(name, ']') >= 0 {
		return Segment{}, false
	}
	seg := Segment{Name: name}
	rest := part[len(name):]
	for rest != "" {
		if rest[0] != '[' {
			return Segment{}, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Segment{}, false
		}
		idx, ok := parseIndex(rest[1:end])
		if !ok {
			return Segment{}, false
		}
		seg.Indices = append(seg.Indices, idx)
		rest = rest[end+1:]
	}
	return seg, true
}

// parseIndex accepts an optional leading '-' followed by decimal digits.
func parseIndex(s string) (int, bool) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve walks path from root. It returns the referenced value and true,
// or false when the path does not reach a value ("absent"). A path that
// reaches an explicit null returns Null() and true.
//
//	Resolve(data, "user.address.city")
//	Resolve(data, "users[-1].name")
//	Resolve(data, "matrix[0][1]")
func Resolve(root Value, path string) (Value, bool) {
	segs, ok := ParsePath(path)
	if !ok {
		return Value{}, false
	}
	return ResolveSegments(root, segs)
}

// ResolveSegments walks already-parsed segments from root.
func ResolveSegments(root Value, segs []Segment) (Value, bool) {
	cursor := root
	for _, seg := range segs {
		var ok bool
		if cursor, ok = cursor.GetAttr(seg.Name); !ok {
			return Value{}, false
		}
		if cursor, ok = ApplyIndices(cursor, seg.Indices); !ok {
			return Value{}, false
		}
	}
	return cursor, true
}

// ApplyIndices indexes into nested arrays in order.
func ApplyIndices(cursor Value, indices []int) (Value, bool) {
	for _, idx := range indices {
		var ok bool
		if cursor, ok = cursor.GetIndex(idx); !ok {
			return Value{}, false
		}
	}
	return cursor, true
}
