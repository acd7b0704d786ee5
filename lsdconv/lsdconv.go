// Package lsdconv offers typed conversions of LSD Value leaves, convenience
// glue kept deliberately separate from the core string-typed tree (LSD's
// core contract has no notion of numeric or boolean types — see package
// lsd's doc comment). Each accessor mirrors a host language's built-in
// parse-by-type call, the way LSD.java's `parsed` method dispatches on
// Class<T>, generalized to Go's explicit-return-value idiom instead of
// reflection.
package lsdconv

import (
	"strconv"

	"github.com/kirillsemyonkin/lsd"
	"github.com/pkg/errors"
)

// Int parses n's Value text as a base-10 signed integer.
func Int(n *lsd.LSD) (int64, error) {
	text, ok := n.Value()
	if !ok {
		return 0, errors.Errorf("lsdconv: not a value (kind=%v)", n.Kind())
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "lsdconv: %q is not an integer", text)
	}
	return v, nil
}

// Float parses n's Value text as a 64-bit float.
func Float(n *lsd.LSD) (float64, error) {
	text, ok := n.Value()
	if !ok {
		return 0, errors.Errorf("lsdconv: not a value (kind=%v)", n.Kind())
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "lsdconv: %q is not a float", text)
	}
	return v, nil
}

// Bool parses n's Value text as a boolean, accepting the same spellings as
// strconv.ParseBool ("1", "t", "T", "TRUE", "true", "True" and their false
// counterparts).
func Bool(n *lsd.LSD) (bool, error) {
	text, ok := n.Value()
	if !ok {
		return false, errors.Errorf("lsdconv: not a value (kind=%v)", n.Kind())
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, errors.Wrapf(err, "lsdconv: %q is not a boolean", text)
	}
	return v, nil
}

// IntAt navigates path from root and parses the result as an integer.
func IntAt(root *lsd.LSD, path string) (int64, error) {
	n, ok := root.Get(path)
	if !ok {
		return 0, errors.Errorf("lsdconv: path %q not found", path)
	}
	return Int(n)
}

// FloatAt navigates path from root and parses the result as a float.
func FloatAt(root *lsd.LSD, path string) (float64, error) {
	n, ok := root.Get(path)
	if !ok {
		return 0, errors.Errorf("lsdconv: path %q not found", path)
	}
	return Float(n)
}

// BoolAt navigates path from root and parses the result as a boolean.
func BoolAt(root *lsd.LSD, path string) (bool, error) {
	n, ok := root.Get(path)
	if !ok {
		return false, errors.Errorf("lsdconv: path %q not found", path)
	}
	return Bool(n)
}
