package jsontree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenType identifies the lexical class of a token.
type TokenType uint8

const (
	// Structural
	TokenLBrace   TokenType = iota // {
	TokenRBrace                    // }
	TokenLBracket                  // [
	TokenRBracket                  // ]
	TokenComma                     // ,
	TokenColon                     // :

	// Literals
	TokenString // "quoted string", escapes already decoded
	TokenNumber // 123, -4.5
	TokenBool   // true, false
	TokenNull   // null
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenComma:
		return ","
	case TokenColon:
		return ":"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenBool:
		return "BOOL"
	case TokenNull:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit of JSON text. Only the payload field matching
// Type is meaningful: Str for TokenString, Num for TokenNumber, Bool for
// TokenBool. Tokens carry no source position; position context is captured
// by the tokenizer's scan cursor at error time.
type Token struct {
	Type TokenType
	Str  string
	Num  float64
	Bool bool
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenString:
		return fmt.Sprintf("STRING(%q)", t.Str)
	case TokenNumber:
		return "NUMBER(" + strconv.FormatFloat(t.Num, 'f', -1, 64) + ")"
	case TokenBool:
		return fmt.Sprintf("BOOL(%t)", t.Bool)
	default:
		return t.Type.String()
	}
}

// Tokenizer scans JSON text into tokens. The cursor advances over characters
// (runes, not bytes) and never rewinds; error positions are 0-based
// character indexes.
type Tokenizer struct {
	input []rune
	pos   int
}

// NewTokenizer creates a tokenizer for the given input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input)}
}

// Tokenize scans the whole input and returns its tokens. Empty input yields
// an empty token sequence. The first lexical fault aborts the scan; there is
// no recovery.
func Tokenize(input string) ([]Token, error) {
	return NewTokenizer(input).Tokenize()
}

// Tokenize returns all tokens from the input.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token
	for !t.atEnd() {
		ch := t.peek()
		switch {
		case ch == '{':
			t.advance()
			tokens = append(tokens, Token{Type: TokenLBrace})
		case ch == '}':
			t.advance()
			tokens = append(tokens, Token{Type: TokenRBrace})
		case ch == '[':
			t.advance()
			tokens = append(tokens, Token{Type: TokenLBracket})
		case ch == ']':
			t.advance()
			tokens = append(tokens, Token{Type: TokenRBracket})
		case ch == ',':
			t.advance()
			tokens = append(tokens, Token{Type: TokenComma})
		case ch == ':':
			t.advance()
			tokens = append(tokens, Token{Type: TokenColon})
		case ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r':
			t.advance()
		case ch == '"':
			tok, err := t.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ch == 't' || ch == 'f' || ch == 'n':
			tok, err := t.scanKeyword()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ch == '-' || isDigit(ch):
			tok, err := t.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			return nil, errUnexpectedToken("valid JSON token", string(ch), t.pos)
		}
	}
	return tokens, nil
}

// scanString scans a quoted string literal, decoding escapes.
func (t *Tokenizer) scanString() (Token, error) {
	quote := t.pos
	t.advance() // consume opening "

	var sb strings.Builder
	for {
		if t.atEnd() {
			return Token{}, errUnexpectedEOF("closing quote", quote)
		}

		ch := t.peek()
		if ch == '"' {
			t.advance() // consume closing "
			break
		}

		if ch != '\\' {
			sb.WriteRune(ch)
			t.advance()
			continue
		}

		t.advance() // consume backslash
		if t.atEnd() {
			return Token{}, errUnexpectedEOF("closing quote", quote)
		}
		esc := t.peek()
		switch esc {
		case '"', '\\', '/':
			sb.WriteRune(esc)
			t.advance()
		case 'b':
			sb.WriteByte('\b')
			t.advance()
		case 'f':
			sb.WriteByte('\f')
			t.advance()
		case 'n':
			sb.WriteByte('\n')
			t.advance()
		case 'r':
			sb.WriteByte('\r')
			t.advance()
		case 't':
			sb.WriteByte('\t')
			t.advance()
		case 'u':
			t.advance() // consume u
			r, err := t.scanUnicodeEscape()
			if err != nil {
				return Token{}, err
			}
			sb.WriteRune(r)
		default:
			return Token{}, errInvalidEscape(esc, t.pos)
		}
	}

	return Token{Type: TokenString, Str: sb.String()}, nil
}

// scanUnicodeEscape scans the 4-hex-digit window of a \u escape. The digits
// name a UTF-16 code unit; code units that are not valid Unicode scalar
// values (the surrogate range) are rejected.
func (t *Tokenizer) scanUnicodeEscape() (rune, error) {
	start := t.pos

	var seq []rune
	for i := 0; i < 4; i++ {
		if t.atEnd() {
			return 0, errInvalidUnicode(string(seq), start)
		}
		seq = append(seq, t.peek())
		t.advance()
	}

	n, err := strconv.ParseUint(string(seq), 16, 32)
	if err != nil {
		return 0, errInvalidUnicode(string(seq), start)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, errInvalidUnicode(string(seq), start)
	}
	return r, nil
}

// scanKeyword scans a maximal run of lowercase letters and matches it
// against the JSON keywords.
func (t *Tokenizer) scanKeyword() (Token, error) {
	start := t.pos

	var sb strings.Builder
	for !t.atEnd() && t.peek() >= 'a' && t.peek() <= 'z' {
		sb.WriteRune(t.peek())
		t.advance()
	}

	switch sb.String() {
	case "true":
		return Token{Type: TokenBool, Bool: true}, nil
	case "false":
		return Token{Type: TokenBool, Bool: false}, nil
	case "null":
		return Token{Type: TokenNull}, nil
	}
	return Token{}, errUnexpectedToken("valid JSON token", sb.String(), start)
}

// scanNumber collects a maximal run of number characters and parses it as a
// 64-bit float. The run-based collection is deliberate: a malformed literal
// like 12.34.56 is caught as a unit rather than silently truncated.
func (t *Tokenizer) scanNumber() (Token, error) {
	start := t.pos

	var sb strings.Builder
	for !t.atEnd() && isNumberChar(t.peek()) {
		sb.WriteRune(t.peek())
		t.advance()
	}
	text := sb.String()

	// Leading-dot numbers (.5, -.5) are invalid JSON even though
	// strconv.ParseFloat accepts them.
	if strings.HasPrefix(text, ".") || strings.HasPrefix(text, "-.") {
		return Token{}, errUnexpectedToken("valid JSON token", text, start)
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, errInvalidNumber(text, start)
	}
	return Token{Type: TokenNumber, Num: n}, nil
}

// Cursor helpers. The scan position is monotonically non-decreasing; the
// raw index is never exposed outside the tokenizer.

func (t *Tokenizer) peek() rune {
	if t.pos >= len(t.input) {
		return 0
	}
	return t.input[t.pos]
}

func (t *Tokenizer) advance() {
	if t.pos < len(t.input) {
		t.pos++
	}
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.input)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNumberChar(ch rune) bool {
	return isDigit(ch) || ch == '.' || ch == '-'
}
