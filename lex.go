package lsd

import (
	"strings"
	"unicode/utf8"
)

// isValueTerminator builds the Value-context terminator predicate from
// spec.md §4.2's table: the common set of space/tab/CR/LF/quote/comment
// characters, plus an optional caller-supplied stop rune (0 means none).
// Level bodies pass '}' as the stop rune so a bare value inside `{ ... }`
// terminates before the closing brace without being quoted.
func isValueTerminator(stop rune) func(rune) bool {
	return func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', '\n', '\'', '"', '#':
			return true
		}
		return stop != 0 && r == stop
	}
}

// isKeyWordTerminator is the Key-context terminator set: the Value set plus
// the four structural brackets and the key-path separator '.'.
func isKeyWordTerminator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\'', '"', '#', '{', '}', '[', ']', '.':
		return true
	}
	return false
}

// isListValueTerminator is the List-value-context terminator set: the Value
// set plus the four structural brackets, but — unlike the Key context — not
// '.', so a literal dot inside an unquoted list item (e.g. a version number
// or a decimal) is not mistaken for a key-path separator.
func isListValueTerminator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\'', '"', '#', '{', '}', '[', ']':
		return true
	}
	return false
}

// readIWS greedily consumes inline whitespace (space and tab) and returns
// the consumed run, needed so value concatenation can preserve internal
// spacing (spec.md §4.2).
func (s *runeStream) readIWS() (string, error) {
	var sb strings.Builder
	for {
		ch, ok, err := s.peek()
		if err != nil {
			return "", err
		}
		if !ok || (ch != ' ' && ch != '\t') {
			break
		}
		sb.WriteRune(ch)
		s.advance()
	}
	return sb.String(), nil
}

// readNWS consumes IWS, line terminators, and #-introduced line comments,
// reporting whether at least one newline was crossed. The newline signal is
// informational only (spec.md §9): the grammar never requires it as a hard
// statement separator.
func (s *runeStream) readNWS() (bool, error) {
	if _, err := s.readIWS(); err != nil {
		return false, err
	}

	hasNewline := false
	inComment := false
	for {
		ch, ok, err := s.peek()
		if err != nil {
			return false, err
		}
		if !ok {
			return hasNewline, nil
		}

		switch {
		case ch == '\r' || ch == '\n':
			s.advance()
			inComment = false
			hasNewline = true
		case inComment:
			s.advance()
			continue
		case ch == '#':
			s.advance()
			inComment = true
		default:
			return hasNewline, nil
		}

		if _, err := s.readIWS(); err != nil {
			return false, err
		}
	}
}

// readWord reads a maximal non-empty run of characters not in isTerminator.
// It is peek-committed: if the first peeked character already terminates,
// it returns ok=false without consuming anything.
func (s *runeStream) readWord(isTerminator func(rune) bool) (string, bool, error) {
	var sb strings.Builder
	for {
		ch, ok, err := s.peek()
		if err != nil {
			return "", false, err
		}
		if !ok || isTerminator(ch) {
			break
		}
		sb.WriteRune(ch)
		s.advance()
	}
	if sb.Len() == 0 {
		return "", false, nil
	}
	return sb.String(), true, nil
}

// readQuotedString reads a '...' or "..." literal with the full escape
// alphabet from spec.md §4.2. It is peek-committed on the opening quote.
func (s *runeStream) readQuotedString() (string, bool, error) {
	ch, ok, err := s.peek()
	if err != nil {
		return "", false, err
	}
	if !ok || (ch != '\'' && ch != '"') {
		return "", false, nil
	}
	closing := ch
	s.advance()

	var sb strings.Builder
	for {
		ch, err := s.readRuneOrFail(UnexpectedStringEnd)
		if err != nil {
			return "", false, err
		}
		if ch == closing {
			return sb.String(), true, nil
		}
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}

		r, err := s.readEscape()
		if err != nil {
			return "", false, err
		}
		sb.WriteRune(r)
	}
}

// readPart reads one value/key/list part: an unquoted word under
// isTerminator, or a quoted string.
func (s *runeStream) readPart(isTerminator func(rune) bool) (string, bool, error) {
	word, ok, err := s.readWord(isTerminator)
	if err != nil {
		return "", false, err
	}
	if ok {
		return word, true, nil
	}
	return s.readQuotedString()
}

// readConcatenated reads one-or-more parts under isTerminator, preserving
// the IWS between consecutive parts and stripping any trailing IWS, per
// spec.md §4.2's value concatenation law and Testable Property 5.
func (s *runeStream) readConcatenated(isTerminator func(rune) bool) (string, bool, error) {
	first, ok, err := s.readPart(isTerminator)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	var sb strings.Builder
	sb.WriteString(first)
	for {
		iws, err := s.readIWS()
		if err != nil {
			return "", false, err
		}
		part, ok, err := s.readPart(isTerminator)
		if err != nil {
			return "", false, err
		}
		if !ok {
			break
		}
		sb.WriteString(iws)
		sb.WriteString(part)
	}
	return sb.String(), true, nil
}

// readKeyPart reads one KeyPart: adjacent key-words and quoted strings
// concatenated with NO intervening IWS (spec.md §4.3 — internal IWS
// terminates the KeyPart and hence the KeyPath, unlike Value/List-value
// concatenation which preserves internal IWS).
func (s *runeStream) readKeyPart() (string, bool, error) {
	var sb strings.Builder
	any := false
	for {
		part, ok, err := s.readPart(isKeyWordTerminator)
		if err != nil {
			return "", false, err
		}
		if !ok {
			break
		}
		sb.WriteString(part)
		any = true
	}
	if !any {
		return "", false, nil
	}
	return sb.String(), true, nil
}

// readRuneOrFail consumes and returns the next rune, or fails with kind if
// the stream is at EOF.
func (s *runeStream) readRuneOrFail(kind ErrorKind) (rune, error) {
	ch, ok, err := s.peek()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, newError(kind)
	}
	s.advance()
	return ch, nil
}

// readEscape reads the character(s) following a '\' inside a quoted string
// and returns the decoded rune, per the escape table in spec.md §4.2.
func (s *runeStream) readEscape() (rune, error) {
	ch, err := s.readRuneOrFail(UnexpectedCharEscapeEnd)
	if err != nil {
		return 0, err
	}
	switch ch {
	case '"':
		return '"', nil
	case '\'':
		return '\'', nil
	case '\\':
		return '\\', nil
	case '0':
		return 0, nil
	case 'a', 'A':
		return '\a', nil
	case 'b', 'B':
		return '\b', nil
	case 't', 'T':
		return '\t', nil
	case 'n', 'N':
		return '\n', nil
	case 'v', 'V':
		return '\v', nil
	case 'f', 'F':
		return '\f', nil
	case 'r', 'R':
		return '\r', nil
	case 'x', 'X':
		return s.readByteEscape()
	case 'u', 'U':
		return s.readUnicodeEscape()
	default:
		return 0, newError(UnexpectedCharEscapeEnd)
	}
}

// readHexDigit reads one hex digit, failing with UnexpectedStringEnd on EOF
// or invalidKind on a non-hex character.
func (s *runeStream) readHexDigit(invalidKind ErrorKind) (byte, error) {
	ch, ok, err := s.peek()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, newError(UnexpectedStringEnd)
	}

	var v byte
	switch {
	case ch >= '0' && ch <= '9':
		v = byte(ch - '0')
	case ch >= 'a' && ch <= 'f':
		v = byte(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		v = byte(ch-'A') + 10
	default:
		return 0, newError(invalidKind)
	}
	s.advance()
	return v, nil
}

func (s *runeStream) readHexByte(invalidKind ErrorKind) (byte, error) {
	hi, err := s.readHexDigit(invalidKind)
	if err != nil {
		return 0, err
	}
	lo, err := s.readHexDigit(invalidKind)
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func (s *runeStream) readHexUint16(invalidKind ErrorKind) (uint16, error) {
	hi, err := s.readHexByte(invalidKind)
	if err != nil {
		return 0, err
	}
	lo, err := s.readHexByte(invalidKind)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// expectEscapeContinuation requires the next two characters to be '\' and
// either letterLower or letterUpper, failing with invalidKind otherwise.
// Both characters are always consumed first and checked after, so an EOF on
// either one fails UnexpectedStringEnd rather than invalidKind — matching
// the reference behaviour the redesign note in spec.md §9 calls out: the
// partner-escape prefix must be read strictly, never inferred.
func (s *runeStream) expectEscapeContinuation(letterLower, letterUpper rune, invalidKind ErrorKind) error {
	ch1, err := s.readRuneOrFail(UnexpectedStringEnd)
	if err != nil {
		return err
	}
	ch2, err := s.readRuneOrFail(UnexpectedStringEnd)
	if err != nil {
		return err
	}
	if ch1 != '\\' || (ch2 != letterLower && ch2 != letterUpper) {
		return newError(invalidKind)
	}
	return nil
}

// leadingOnes counts the number of consecutive 1 bits from the most
// significant bit of b, used to classify a UTF-8 lead byte.
func leadingOnes(b byte) int {
	n := 0
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) == 0 {
			break
		}
		n++
	}
	return n
}

// readByteEscape reads a \x escape and any continuation \x escapes it
// demands, decoding the assembled bytes as UTF-8 (spec.md §4.2).
func (s *runeStream) readByteEscape() (rune, error) {
	b0, err := s.readHexByte(UnexpectedCharInByteEscape)
	if err != nil {
		return 0, err
	}

	n := leadingOnes(b0)
	if n == 0 {
		return rune(b0), nil
	}
	if n < 2 || n > 4 {
		return 0, newError(UnexpectedCharInByteEscape)
	}

	buf := make([]byte, n)
	buf[0] = b0
	for i := 1; i < n; i++ {
		if err := s.expectEscapeContinuation('x', 'X', UnexpectedCharInByteEscape); err != nil {
			return 0, err
		}
		b, err := s.readHexByte(UnexpectedCharInByteEscape)
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError || size != len(buf) {
		return 0, newError(UnexpectedCharInByteEscape)
	}
	return r, nil
}

// decodeUTF16Unit decodes a single UTF-16 code unit as a standalone code
// point, failing if it is a surrogate half.
func decodeUTF16Unit(u uint16) (rune, bool) {
	if u >= 0xD800 && u <= 0xDFFF {
		return 0, false
	}
	return rune(u), true
}

// decodeUTF16Pair decodes a high/low surrogate pair into its code point.
func decodeUTF16Pair(hi, lo uint16) (rune, bool) {
	if hi < 0xD800 || hi > 0xDBFF || lo < 0xDC00 || lo > 0xDFFF {
		return 0, false
	}
	r := 0x10000 + (rune(hi)-0xD800)<<10 + (rune(lo) - 0xDC00)
	return r, true
}

// readUnicodeEscape reads a \u escape and, if the first code unit is a
// surrogate half, the mandatory partner \u escape, decoding the pair as
// UTF-16BE (spec.md §4.2).
func (s *runeStream) readUnicodeEscape() (rune, error) {
	u1, err := s.readHexUint16(UnexpectedCharInUnicodeEscape)
	if err != nil {
		return 0, err
	}
	if r, ok := decodeUTF16Unit(u1); ok {
		return r, nil
	}

	if err := s.expectEscapeContinuation('u', 'U', UnexpectedCharInUnicodeEscape); err != nil {
		return 0, err
	}

	u2, err := s.readHexUint16(UnexpectedCharInUnicodeEscape)
	if err != nil {
		return 0, err
	}

	r, ok := decodeUTF16Pair(u1, u2)
	if !ok {
		return 0, newError(UnexpectedCharInUnicodeEscape)
	}
	return r, nil
}
