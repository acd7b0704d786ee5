package lsd

import "strconv"

// Walk visits n and every descendant depth-first: level entries in
// insertion order, list items in index order. visit is called once per
// node with the path of segments leading to it from the root (empty for
// the root itself). Walk stops early if visit returns false.
func Walk(n *LSD, visit func(path Path, node *LSD) bool) {
	walk(n, Path{}, visit)
}

func walk(n *LSD, path Path, visit func(path Path, node *LSD) bool) bool {
	if !visit(path, n) {
		return false
	}

	switch n.kind {
	case KindList:
		for i, item := range n.list {
			if !walk(item, appendSegment(path, NewSegment(strconv.Itoa(i))), visit) {
				return false
			}
		}
	case KindLevel:
		cont := true
		n.level.Range(func(key string, value *LSD) bool {
			cont = walk(value, appendSegment(path, NewSegment(key)), visit)
			return cont
		})
		if !cont {
			return false
		}
	}
	return true
}

// appendSegment returns a new Path with seg appended, never aliasing path's
// backing array, since walk calls this once per sibling from the same
// parent path.
func appendSegment(path Path, seg Segment) Path {
	next := make(Path, len(path)+1)
	copy(next, path)
	next[len(path)] = seg
	return next
}
