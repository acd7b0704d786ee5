package lsd

import (
	"reflect"
	"testing"
)

func mustLevel(t *testing.T, got *LSD) *Level {
	t.Helper()
	l, ok := got.Level()
	if !ok {
		t.Fatalf("root is not a Level: kind=%v", got.Kind())
	}
	return l
}

func levelValue(t *testing.T, l *Level, key string) string {
	t.Helper()
	n, ok := l.Get(key)
	if !ok {
		t.Fatalf("key %q missing", key)
	}
	v, ok := n.Value()
	if !ok {
		t.Fatalf("key %q is not a Value (kind=%v)", key, n.Kind())
	}
	return v
}

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"simple entries", "a 10\nb 20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) error = %v", tt.input, err)
			}
			mustLevel(t, got)
		})
	}
}

func TestParseEmptyInputIsEmptyLevel(t *testing.T) {
	got, err := ParseString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := mustLevel(t, got)
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
}

func TestParseSimpleLevel(t *testing.T) {
	got, err := ParseString("a 10\nb 20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := mustLevel(t, got)
	if levelValue(t, l, "a") != "10" || levelValue(t, l, "b") != "20" {
		t.Fatalf("unexpected entries: %+v", l.Keys())
	}
}

func TestParseNestedKeyPathMerge(t *testing.T) {
	input := "outer.\"example level\".value 10\nouter.\"example level\".value2 20"
	got, err := ParseString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer := mustLevel(t, got)
	outerNode, ok := outer.Get("outer")
	if !ok {
		t.Fatalf("missing outer")
	}
	outerLevel, ok := outerNode.Level()
	if !ok {
		t.Fatalf("outer is not a level")
	}
	innerNode, ok := outerLevel.Get("example level")
	if !ok {
		t.Fatalf("missing nested level key")
	}
	inner, ok := innerNode.Level()
	if !ok {
		t.Fatalf("nested value is not a level")
	}
	if levelValue(t, inner, "value") != "10" || levelValue(t, inner, "value2") != "20" {
		t.Fatalf("unexpected nested entries: %+v", inner.Keys())
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseString("[ 1 2 {} 3 4 ]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, ok := got.List()
	if !ok {
		t.Fatalf("root is not a list")
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if v, _ := items[0].Value(); v != "1 2" {
		t.Fatalf("items[0] = %q, want %q", v, "1 2")
	}
	if l, ok := items[1].Level(); !ok || l.Len() != 0 {
		t.Fatalf("items[1] is not an empty level: %+v", items[1])
	}
	if v, _ := items[2].Value(); v != "3 4" {
		t.Fatalf("items[2] = %q, want %q", v, "3 4")
	}
}

func TestParseKeyCollisionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		key   string
	}{
		{"repeated leaf key", "a 10\na 20", KeyCollisionKeyAlreadyExists, "a"},
		{"leaf then path through it", "a 10\na.b 20", KeyCollisionShouldBeLevelButIsNot, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", pe.Kind, tt.kind)
			}
			if tt.key != "" && pe.Key != tt.key {
				t.Fatalf("Key = %q, want %q", pe.Key, tt.key)
			}
		})
	}
}

func TestParseTrailingGarbageAtFileEnd(t *testing.T) {
	_, err := ParseString("{} test")
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnexpectedCharAtFileEnd {
		t.Fatalf("error = %v, want UnexpectedCharAtFileEnd", err)
	}
}

func TestParseByteEscapeContinuationFailure(t *testing.T) {
	_, err := ParseString(`test "\xf0\x00\x00\x00\x00"`)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnexpectedCharInByteEscape {
		t.Fatalf("error = %v, want UnexpectedCharInByteEscape", err)
	}
}

func TestParseLoneLowSurrogateFailure(t *testing.T) {
	_, err := ParseString(`test "\udfff"`)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnexpectedStringEnd {
		t.Fatalf("error = %v, want UnexpectedStringEnd", err)
	}
}

func TestParseQuotedConcatenationPreservesIWS(t *testing.T) {
	got, err := ParseString(`c  a  "test string\nand spaces"  b`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := mustLevel(t, got)
	if got, want := levelValue(t, l, "c"), "a  test string\nand spaces  b"; got != want {
		t.Fatalf("value = %q, want %q", got, want)
	}
}

func TestParseEscapeTable(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"\""`, `"`},
		{`"\'"`, `'`},
		{`"\\"`, `\`},
		{`"\n"`, "\n"},
		{`"\t"`, "\t"},
		{`"\r"`, "\r"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseString("k " + tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			l := mustLevel(t, got)
			if v := levelValue(t, l, "k"); v != tt.want {
				t.Fatalf("value = %q, want %q", v, tt.want)
			}
		})
	}
}

func TestNavigatePathIdentity(t *testing.T) {
	got, err := ParseString("a.b.c 42\nlist [ 1 2 3 ]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n1, ok1 := got.Get("a.b.c")
	n2, ok2 := got.Get("a.b.c")
	if !ok1 || !ok2 || !reflect.DeepEqual(n1, n2) {
		t.Fatalf("repeated navigation not structurally equal: %v/%v, %v/%v", n1, ok1, n2, ok2)
	}

	// Space-separated list parts concatenate, so the list holds one value.
	elem, ok := got.Get("list.0")
	if !ok {
		t.Fatalf("list.0 navigation missed")
	}
	if v, _ := elem.Value(); v != "1 2 3" {
		t.Fatalf("list.0 = %q, want %q", v, "1 2 3")
	}
}
