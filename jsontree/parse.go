package jsontree

// MaxDepth bounds container nesting. Array and object parsing recurse one
// call frame per level, so an unbounded input like "[[[[..." would otherwise
// translate directly into call-stack growth; inputs nested deeper than this
// fail with ErrNestingTooDeep.
const MaxDepth = 1000

// tokenCursor is the parser's forward-only position over the token sequence.
// It supports peek and advance only and never rewinds.
type tokenCursor struct {
	tokens []Token
	pos    int
}

func (c *tokenCursor) peek() (Token, bool) {
	if c.atEnd() {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *tokenCursor) advance() (Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

func (c *tokenCursor) atEnd() bool {
	return c.pos >= len(c.tokens)
}

// Parser builds a Value tree from a token sequence by recursive descent with
// one token of lookahead. Error positions from the parser are token indexes,
// not character offsets.
type Parser struct {
	cur tokenCursor
}

// Parse tokenizes and parses input into a Value tree. It either fully
// succeeds with one value or fully fails with one *ParseError; there is no
// partial result. Inputs with tokens after the first value are rejected.
func Parse(input string) (*Value, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// NewParser tokenizes input eagerly, so a lexical fault surfaces here rather
// than from Parse.
func NewParser(input string) (*Parser, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return &Parser{cur: tokenCursor{tokens: tokens}}, nil
}

// Parse consumes the token sequence and returns the value tree.
func (p *Parser) Parse() (*Value, error) {
	value, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.cur.peek(); ok {
		return nil, errUnexpectedToken("end of input", tok.String(), p.cur.pos)
	}
	return value, nil
}

// parseValue parses any value. depth is the container nesting level of the
// enclosing context.
func (p *Parser) parseValue(depth int) (*Value, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, errUnexpectedEOF("JSON value", p.cur.pos)
	}

	switch tok.Type {
	case TokenLBracket:
		return p.parseArray(depth + 1)
	case TokenLBrace:
		return p.parseObject(depth + 1)
	}

	p.cur.advance()
	switch tok.Type {
	case TokenString:
		return Str(tok.Str), nil
	case TokenNumber:
		return Number(tok.Num), nil
	case TokenBool:
		return Bool(tok.Bool), nil
	case TokenNull:
		return Null(), nil
	default:
		return nil, errUnexpectedToken("JSON value", tok.String(), p.cur.pos-1)
	}
}

// parseArray parses '[' (value (',' value)*)? ']'.
func (p *Parser) parseArray(depth int) (*Value, error) {
	if depth > MaxDepth {
		return nil, errNestingTooDeep(p.cur.pos)
	}
	p.cur.advance() // consume [

	var elems []*Value

	// Empty array: no element is parsed.
	if tok, ok := p.cur.peek(); ok && tok.Type == TokenRBracket {
		p.cur.advance()
		return Array(), nil
	}

	for {
		elem, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		tok, ok := p.cur.peek()
		if !ok {
			return nil, errUnexpectedEOF("comma or closing bracket", p.cur.pos)
		}
		switch tok.Type {
		case TokenComma:
			p.cur.advance()
			// Trailing commas are rejected.
			if next, ok := p.cur.peek(); ok && next.Type == TokenRBracket {
				return nil, errUnexpectedToken("JSON value", next.String(), p.cur.pos)
			}
		case TokenRBracket:
			p.cur.advance()
			return Array(elems...), nil
		default:
			return nil, errUnexpectedToken("comma or closing bracket", tok.String(), p.cur.pos)
		}
	}
}

// parseObject parses '{' (pair (',' pair)*)? '}' with pair := string ':'
// value. A duplicate key overwrites the earlier value.
func (p *Parser) parseObject(depth int) (*Value, error) {
	if depth > MaxDepth {
		return nil, errNestingTooDeep(p.cur.pos)
	}
	p.cur.advance() // consume {

	fields := map[string]*Value{}

	// Empty object, symmetric to the empty-array case.
	if tok, ok := p.cur.peek(); ok && tok.Type == TokenRBrace {
		p.cur.advance()
		return Object(fields), nil
	}

	for {
		tok, ok := p.cur.peek()
		if !ok {
			return nil, errUnexpectedEOF("string key", p.cur.pos)
		}
		if tok.Type != TokenString {
			return nil, errUnexpectedToken("string key", tok.String(), p.cur.pos)
		}
		p.cur.advance()
		key := tok.Str

		tok, ok = p.cur.peek()
		if !ok {
			return nil, errUnexpectedEOF("colon", p.cur.pos)
		}
		if tok.Type != TokenColon {
			return nil, errUnexpectedToken("colon", tok.String(), p.cur.pos)
		}
		p.cur.advance()

		value, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		fields[key] = value // last write wins for duplicate keys

		tok, ok = p.cur.peek()
		if !ok {
			return nil, errUnexpectedEOF("comma or closing brace", p.cur.pos)
		}
		switch tok.Type {
		case TokenComma:
			p.cur.advance()
			// Trailing commas are rejected.
			if next, ok := p.cur.peek(); ok && next.Type == TokenRBrace {
				return nil, errUnexpectedToken("string key", next.String(), p.cur.pos)
			}
		case TokenRBrace:
			p.cur.advance()
			return Object(fields), nil
		default:
			return nil, errUnexpectedToken("comma or closing brace", tok.String(), p.cur.pos)
		}
	}
}
