package jsontree

import (
	"strconv"
	"strings"
)

// String returns the canonical textual form of the value. The output is
// exactly parseable by Parse, and the reparsed tree is Equal to the original
// modulo object key order.
//
// Numbers with a zero fractional part render without a decimal point (42,
// not 42.0); other numbers render in the shortest fixed-notation decimal
// that round-trips. Strings escape exactly ", \, \n, \r and \t; other
// control characters pass through unescaped. Object fields follow map
// iteration order, which is unspecified across runs.
func (v *Value) String() string {
	var e emitter
	e.emit(v)
	return e.sb.String()
}

type emitter struct {
	sb strings.Builder
}

func (e *emitter) emit(v *Value) {
	if v == nil || v.kind == KindNull {
		e.sb.WriteString("null")
		return
	}

	switch v.kind {
	case KindBool:
		if v.boolVal {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}

	case KindNumber:
		// Shortest decimal that round-trips, fixed notation only: the
		// tokenizer's number grammar has no exponent form.
		e.sb.WriteString(strconv.FormatFloat(v.numVal, 'f', -1, 64))

	case KindString:
		e.emitString(v.strVal)

	case KindArray:
		e.sb.WriteByte('[')
		for i, elem := range v.arrVal {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.emit(elem)
		}
		e.sb.WriteByte(']')

	case KindObject:
		e.sb.WriteByte('{')
		first := true
		for key, val := range v.objVal {
			if !first {
				e.sb.WriteByte(',')
			}
			first = false
			e.emitString(key)
			e.sb.WriteByte(':')
			e.emit(val)
		}
		e.sb.WriteByte('}')
	}
}

func (e *emitter) emitString(s string) {
	e.sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			e.sb.WriteString(`\"`)
		case '\\':
			e.sb.WriteString(`\\`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		default:
			e.sb.WriteRune(r)
		}
	}
	e.sb.WriteByte('"')
}
