package jsontree

import "fmt"

// ErrorKind identifies the failure class of a ParseError. The set is closed:
// every fault a tokenizer or parser can report is one of these.
type ErrorKind uint8

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnexpectedEOF
	ErrInvalidNumber
	ErrInvalidEscape
	ErrInvalidUnicode
	ErrNestingTooDeep
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrInvalidEscape:
		return "invalid escape"
	case ErrInvalidUnicode:
		return "invalid unicode escape"
	case ErrNestingTooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// ParseError is the single error type reported by Tokenize and Parse. Each
// value is a leaf fact about one scan position: there are no wrapped causes
// and no partial results behind it. The populated detail fields depend on
// Kind; every variant carries enough context to render its diagnostic
// without consulting the original input.
type ParseError struct {
	Kind ErrorKind

	// Pos is 0-based: a character index into the input for tokenizer
	// faults, a token index for parser faults. Diagnostic only; not
	// usable for re-slicing the input.
	Pos int

	Expected string // ErrUnexpectedToken, ErrUnexpectedEOF
	Found    string // ErrUnexpectedToken
	Value    string // ErrInvalidNumber: the offending literal text
	Char     rune   // ErrInvalidEscape: the character after the backslash
	Sequence string // ErrInvalidUnicode: the collected hex digits, possibly short
}

// Error renders a one-line diagnostic. The wording per variant is stable;
// the exact byte layout is a debugging aid, not a protocol.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("Unexpected token at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
	case ErrUnexpectedEOF:
		return fmt.Sprintf("Unexpected end of input at position %d: expected %s", e.Pos, e.Expected)
	case ErrInvalidNumber:
		return fmt.Sprintf("Invalid number at position %d: %s", e.Pos, e.Value)
	case ErrInvalidEscape:
		return fmt.Sprintf("Invalid escape sequence '\\%c' at position %d", e.Char, e.Pos)
	case ErrInvalidUnicode:
		return fmt.Sprintf("Invalid unicode escape '\\u%s' at position %d", e.Sequence, e.Pos)
	case ErrNestingTooDeep:
		return fmt.Sprintf("Nesting too deep at position %d: exceeds %d levels", e.Pos, MaxDepth)
	default:
		return fmt.Sprintf("Parse error at position %d", e.Pos)
	}
}

func errUnexpectedToken(expected, found string, pos int) *ParseError {
	return &ParseError{Kind: ErrUnexpectedToken, Expected: expected, Found: found, Pos: pos}
}

func errUnexpectedEOF(expected string, pos int) *ParseError {
	return &ParseError{Kind: ErrUnexpectedEOF, Expected: expected, Pos: pos}
}

func errInvalidNumber(value string, pos int) *ParseError {
	return &ParseError{Kind: ErrInvalidNumber, Value: value, Pos: pos}
}

func errInvalidEscape(ch rune, pos int) *ParseError {
	return &ParseError{Kind: ErrInvalidEscape, Char: ch, Pos: pos}
}

func errInvalidUnicode(sequence string, pos int) *ParseError {
	return &ParseError{Kind: ErrInvalidUnicode, Sequence: sequence, Pos: pos}
}

func errNestingTooDeep(pos int) *ParseError {
	return &ParseError{Kind: ErrNestingTooDeep, Pos: pos}
}
