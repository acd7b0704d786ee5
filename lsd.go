// Package lsd implements LSD ("Less Syntax Data"), a whitespace-tolerant,
// comment-friendly configuration and data-interchange format.
//
// An LSD document is one of three node kinds:
//
//	Value — a leaf string
//	List  — an ordered sequence of nodes, written [ a b c ]
//	Level — an insertion-ordered, uniquely-keyed mapping, written { a 1 b 2 }
//
// At the top level the braces around a Level are optional, so a whole file
// can be a bare sequence of `key value` entries.
//
// BNF:
//
//	<document>    ::= <nws> ( <list> | <level> | <level-body> ) <nws> ;
//
//	<level>       ::= "{" <nws> <level-body> "}" ;
//	<level-body>  ::= ( <key-path> <nws> <lsd> <nws> )* ;
//	<key-path>    ::= <key-part> ( "." <key-part> )* ;
//	<key-part>    ::= ( <key-word> | <quoted-string> )+ ;
//
//	<list>        ::= "[" <nws> ( <list-item> <nws> )* "]" ;
//	<list-item>   ::= <list> | <level> | <list-value> ;
//	<list-value>  ::= ( <list-word> | <quoted-string> <iws>? )+ ;
//
//	<lsd>         ::= <list> | <level> | <value> ;
//	<value>       ::= ( <value-word> | <quoted-string> <iws>? )+ ;
//
//	<quoted-string> ::= "'" <q-char | escape>* "'" | '"' <q-char | escape>* '"' ;
//	<escape>        ::= "\" ( '"' | "'" | "\" | "0" | [aAbBtTnNvVfFrR]
//	                         | ( "x" | "X" ) <hex-byte> ( "\" ("x"|"X") <hex-byte> )*
//	                         | ( "u" | "U" ) <hex-u16> ( "\" ("u"|"U") <hex-u16> )? ) ;
//
//	<iws>         ::= ( " " | "\t" )* ;
//	<nws>         ::= ( <iws> | <newline> | <comment> )* ;
//	<comment>     ::= "#" <any char except newline>* ;
//
// Parsing produces an *LSD tree via Parse, ParseString, or ParseFile.
// Repeated keys in a level body are reconciled by the merge algorithm: a
// key-path with a dot synthesizes nested Levels, and re-stating a key whose
// existing and incoming values are both Levels merges them recursively;
// any other repetition is a ParseError. Navigate and Get walk a parsed
// tree by a sequence of Segments: in a List, a segment that parses as a
// signed integer selects an index; in a Level, every segment is looked up
// as a key by its text.
package lsd

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads and parses a complete LSD document from r, per spec.md §6.
// The returned tree's root is always a List or Level, never a bare Value
// (spec.md §3, Testable Property 2).
func Parse(r io.Reader) (*LSD, error) {
	return parseRoot(newRuneStream(r))
}

// ParseString parses s as a complete in-memory LSD document.
func ParseString(s string) (*LSD, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens, parses, and closes the file at path. I/O failures,
// including the open itself, surface as a ReadFailure ParseError.
func ParseFile(path string) (*LSD, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newReadFailure(errors.Wrapf(err, "lsd: open %s", path))
	}
	defer f.Close()

	return Parse(f)
}
