package jsontree

// Kind represents JSON value types.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed JSON tree. Only the payload field matching
// the kind tag is meaningful. A tree is built once by the parser and must be
// treated as immutable afterwards; each child is owned exclusively by its
// parent container.
//
// All JSON numbers are float64: integers beyond the exact-integer range of
// float64 lose precision. Objects are backed by a Go map, so key iteration
// order is unspecified and duplicate keys in the input collapse to the last
// value seen.
type Value struct {
	kind Kind

	boolVal bool
	numVal  float64
	strVal  string
	arrVal  []*Value
	objVal  map[string]*Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a number value.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Object creates an object value. The map is taken over, not copied.
func Object(fields map[string]*Value) *Value {
	if fields == nil {
		fields = map[string]*Value{}
	}
	return &Value{kind: KindObject, objVal: fields}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean payload, if this is a boolean.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

// AsNumber returns the float64 payload, if this is a number.
func (v *Value) AsNumber() (float64, bool) {
	if v == nil || v.kind != KindNumber {
		return 0, false
	}
	return v.numVal, true
}

// AsStr returns the string payload, if this is a string.
func (v *Value) AsStr() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.strVal, true
}

// AsArray returns the element slice, if this is an array. The slice must not
// be mutated.
func (v *Value) AsArray() ([]*Value, bool) {
	if v == nil || v.kind != KindArray {
		return nil, false
	}
	return v.arrVal, true
}

// AsObject returns the field map, if this is an object. The map must not be
// mutated; iteration order is unspecified.
func (v *Value) AsObject() (map[string]*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.objVal, true
}

// Get returns the field value for key, or nil if this is not an object or
// the key is absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.objVal[key]
}

// Index returns the i-th element, or nil if this is not an array or i is out
// of bounds.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil
	}
	return v.arrVal[i]
}

// Len returns the element count of an array or field count of an object,
// and 0 for every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// Equal reports structural, variant-exact equality: an object never equals
// an array, and Number(1) never equals Bool(true). Object comparison ignores
// key order.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindNumber:
		return v.numVal == o.numVal
	case KindString:
		return v.strVal == o.strVal
	case KindArray:
		if len(v.arrVal) != len(o.arrVal) {
			return false
		}
		for i, elem := range v.arrVal {
			if !elem.Equal(o.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.objVal) != len(o.objVal) {
			return false
		}
		for k, val := range v.objVal {
			other, ok := o.objVal[k]
			if !ok || !val.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
