// Package jsontree parses strict JSON text into an immutable value tree and
// renders trees back to canonical text.
//
// The pipeline has three stages: a character-level tokenizer, a
// recursive-descent parser with one token of lookahead, and the Value type
// with its canonical serialization. Control flows strictly forward; the
// parser never re-invokes the tokenizer.
//
//	input text -> Tokenize -> []Token -> Parse -> *Value -> String() -> output text
//
// # Usage
//
//	v, err := jsontree.Parse(`{"items":[1,2,3],"meta":{"count":3}}`)
//	if err != nil {
//		// err is a *jsontree.ParseError with a one-line diagnostic
//	}
//	count, ok := v.Get("meta").Get("count").AsNumber()
//
// # Grammar
//
// Strict JSON only: no comments, no trailing commas, no leniency. The number
// grammar is a maximal run of digits, '.' and '-' parsed as a float64;
// exponent notation is not recognized.
//
//	value  := object | array | string | number | boolean | null
//	array  := '[' (value (',' value)*)? ']'
//	object := '{' (pair (',' pair)*)? '}'
//	pair   := string ':' value
//
// # Errors
//
// Every failure is a *ParseError carrying a closed ErrorKind and a 0-based
// position: a character index for tokenizer faults, a token index for parser
// faults. The first fault aborts the whole call; parsing either fully
// succeeds with one tree or fully fails with one error. Faults are
// deterministic functions of the input, so retrying is never useful.
//
// # Limitations
//
//   - All numbers are float64; integers beyond 2^53 lose precision.
//   - Object key order is not preserved. Output key order follows Go map
//     iteration and varies across runs; callers must not depend on it.
//   - Duplicate object keys are permitted in input; the last value wins.
//   - Serialization escapes only ", \, \n, \r and \t in strings; other
//     control characters pass through raw.
//   - Container nesting is bounded by MaxDepth.
//
// Tokenizing and parsing are pure transformations with no I/O and no shared
// state, so the package is safe to use concurrently from independent
// goroutines.
package jsontree
