package lsd

import "fmt"

// ErrorKind is the closed, enumerated set of parse failure kinds from
// spec.md §7. No other kind of parse failure exists.
type ErrorKind uint8

const (
	ReadFailure ErrorKind = iota
	UnexpectedCharAtFileEnd
	UnexpectedStringEnd
	UnexpectedCharEscapeEnd
	UnexpectedCharInByteEscape
	UnexpectedCharInUnicodeEscape
	ExpectedKeyOrEnd
	ExpectedKeyPartAfterKeySeparator
	ExpectedLSDAfterKey
	ExpectedListLSDOrEnd
	KeyCollisionShouldBeLevelButIsNot
	KeyCollisionKeyAlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case ReadFailure:
		return "ReadFailure"
	case UnexpectedCharAtFileEnd:
		return "UnexpectedCharAtFileEnd"
	case UnexpectedStringEnd:
		return "UnexpectedStringEnd"
	case UnexpectedCharEscapeEnd:
		return "UnexpectedCharEscapeEnd"
	case UnexpectedCharInByteEscape:
		return "UnexpectedCharInByteEscape"
	case UnexpectedCharInUnicodeEscape:
		return "UnexpectedCharInUnicodeEscape"
	case ExpectedKeyOrEnd:
		return "ExpectedKeyOrEnd"
	case ExpectedKeyPartAfterKeySeparator:
		return "ExpectedKeyPartAfterKeySeparator"
	case ExpectedLSDAfterKey:
		return "ExpectedLSDAfterKey"
	case ExpectedListLSDOrEnd:
		return "ExpectedListLSDOrEnd"
	case KeyCollisionShouldBeLevelButIsNot:
		return "KeyCollisionShouldBeLevelButIsNot"
	case KeyCollisionKeyAlreadyExists:
		return "KeyCollisionKeyAlreadyExists"
	default:
		return "UnknownParseError"
	}
}

// ParseError is the single error type returned by every parse operation.
// Its Kind is one of the closed set above; Key is only meaningful for
// KeyCollisionKeyAlreadyExists, and Cause is only meaningful for
// ReadFailure.
type ParseError struct {
	Kind  ErrorKind
	Key   string
	Cause error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ReadFailure:
		return fmt.Sprintf("lsd: read failure: %v", e.Cause)
	case KeyCollisionKeyAlreadyExists:
		return fmt.Sprintf("lsd: key %q already exists", e.Key)
	default:
		return "lsd: " + e.Kind.String()
	}
}

// Unwrap exposes the underlying I/O cause, if any, to errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Cause }

func newError(kind ErrorKind) error {
	return &ParseError{Kind: kind}
}

func newCollisionError(key string) error {
	return &ParseError{Kind: KeyCollisionKeyAlreadyExists, Key: key}
}

func newReadFailure(cause error) error {
	return &ParseError{Kind: ReadFailure, Cause: cause}
}
