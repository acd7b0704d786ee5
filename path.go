package lsd

import "strconv"

// Segment is one step of a navigation path: either an Index into a List or
// a Key into a Level. Classification follows spec.md §4.4: a segment that
// parses as a signed integer is an Index; everything else is a Key. Level
// lookup always uses the segment's original string form, even when it also
// parsed as an Index, so a Level with the literal key "0" is reachable the
// same way whether the path came from a list or a level.
type Segment struct {
	raw   string
	index int
	isIdx bool
}

// NewSegment classifies raw per spec.md §4.4's signed-integer rule.
func NewSegment(raw string) Segment {
	if n, err := strconv.Atoi(raw); err == nil {
		return Segment{raw: raw, index: n, isIdx: true}
	}
	return Segment{raw: raw}
}

// String returns the segment's original textual form.
func (seg Segment) String() string { return seg.raw }

// Path is an ordered sequence of Segments, as produced by ParsePath.
type Path []Segment

// ParsePath splits a dot-separated path string into Segments. It does not
// interpret quoting or escapes: callers constructing paths programmatically
// should build a Path directly with NewSegment instead.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	parts := splitOnDot(s)
	path := make(Path, len(parts))
	for i, p := range parts {
		path[i] = NewSegment(p)
	}
	return path
}

func splitOnDot(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// Inner navigates one Segment into n, per spec.md §4.4: an Index selects
// the nth element of a List (out of range is a miss), and a Key — using the
// segment's string form regardless of whether it also parsed as an
// Index — looks the key up in a Level. Navigating any other combination
// (a Key into a List, or any segment into a Value) is a miss.
func (n *LSD) Inner(seg Segment) (*LSD, bool) {
	if n == nil {
		return nil, false
	}
	switch n.kind {
	case KindList:
		if !seg.isIdx || seg.index < 0 || seg.index >= len(n.list) {
			return nil, false
		}
		return n.list[seg.index], true
	case KindLevel:
		return n.level.Get(seg.raw)
	default:
		return nil, false
	}
}

// Navigate walks path from n, returning the node reached, or false if any
// segment misses.
func (n *LSD) Navigate(path Path) (*LSD, bool) {
	cur := n
	for _, seg := range path {
		next, ok := cur.Inner(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Get navigates a dot-separated path string from n. It is a convenience
// wrapper around ParsePath and Navigate for programmatic lookups.
func (n *LSD) Get(path string) (*LSD, bool) {
	return n.Navigate(ParsePath(path))
}

// ValueAt is Navigate followed by a category check: a missing path yields
// ("", nil), a path that resolves to a non-Value node fails with
// onTypeError, and a path that resolves to a Value yields its text. This is
// spec.md §4.4's `value(path, onTypeError)` operation, grounded in
// original_source/rust/src/lib.rs's LSDGetExt::value. Named with the `At`
// suffix, as lsdconv's IntAt/FloatAt/BoolAt already do, since LSD.Value()
// is taken by the zero-argument Value accessor.
func (n *LSD) ValueAt(path Path, onTypeError error) (string, error) {
	node, ok := n.Navigate(path)
	if !ok {
		return "", nil
	}
	v, ok := node.Value()
	if !ok {
		return "", onTypeError
	}
	return v, nil
}

// ListAt is Navigate followed by a category check, spec.md §4.4's
// `list(path, onTypeError)` operation: a missing path yields (nil, nil), a
// path that resolves to a non-List node fails with onTypeError, and a path
// that resolves to a List yields its items.
func (n *LSD) ListAt(path Path, onTypeError error) ([]*LSD, error) {
	node, ok := n.Navigate(path)
	if !ok {
		return nil, nil
	}
	items, ok := node.List()
	if !ok {
		return nil, onTypeError
	}
	return items, nil
}

// LevelAt is Navigate followed by a category check, spec.md §4.4's
// `level(path, onTypeError)` operation: a missing path yields (nil, nil), a
// path that resolves to a non-Level node fails with onTypeError, and a path
// that resolves to a Level yields it.
func (n *LSD) LevelAt(path Path, onTypeError error) (*Level, error) {
	node, ok := n.Navigate(path)
	if !ok {
		return nil, nil
	}
	level, ok := node.Level()
	if !ok {
		return nil, onTypeError
	}
	return level, nil
}
