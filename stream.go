package lsd

import (
	"bufio"
	"io"
)

// runeStream adapts a rune source into a one-rune-lookahead interface, the
// only lookahead the grammar ever needs (spec.md §4.1). It mirrors
// alttpo-sexp's peek-then-accept pattern over io.RuneScanner, but makes the
// peek slot explicit instead of relying on UnreadRune, since LSD's grammar
// needs to inspect the peeked rune from several call sites before deciding
// whether to consume it.
type runeStream struct {
	r io.RuneReader

	has  bool // a rune has been read into peeked and not yet consumed
	eof  bool // the underlying reader has been exhausted
	peeked rune
}

// newRuneStream wraps r as a runeStream. Callers retain ownership of r; the
// stream never closes it.
func newRuneStream(r io.Reader) *runeStream {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &runeStream{r: rr}
}

// peek returns the next rune without consuming it. Repeated calls without an
// intervening advance return the same rune. The second return is false at
// end of input.
func (s *runeStream) peek() (rune, bool, error) {
	if s.has {
		return s.peeked, true, nil
	}
	if s.eof {
		return 0, false, nil
	}
	ch, _, err := s.r.ReadRune()
	if err == io.EOF {
		s.eof = true
		return 0, false, nil
	}
	if err != nil {
		return 0, false, newReadFailure(err)
	}
	s.peeked = ch
	s.has = true
	return ch, true, nil
}

// advance consumes the rune last returned by peek. Calling advance without a
// prior successful peek is a programmer error and panics, matching the
// contract spec.md §4.1 leaves implementer-defined.
func (s *runeStream) advance() {
	if !s.has {
		panic("lsd: advance called without a preceding peek")
	}
	s.has = false
}
