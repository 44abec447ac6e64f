package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Accessor totality
// ============================================================

func TestValue_AccessorTotality(t *testing.T) {
	values := map[Kind]*Value{
		KindNull:   Null(),
		KindBool:   Bool(true),
		KindNumber: Number(1.5),
		KindString: Str("s"),
		KindArray:  Array(Number(1)),
		KindObject: Object(map[string]*Value{"k": Number(1)}),
	}

	for kind, v := range values {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, kind, v.Kind())
			assert.Equal(t, kind == KindNull, v.IsNull())

			_, ok := v.AsBool()
			assert.Equal(t, kind == KindBool, ok)
			_, ok = v.AsNumber()
			assert.Equal(t, kind == KindNumber, ok)
			_, ok = v.AsStr()
			assert.Equal(t, kind == KindString, ok)
			_, ok = v.AsArray()
			assert.Equal(t, kind == KindArray, ok)
			_, ok = v.AsObject()
			assert.Equal(t, kind == KindObject, ok)

			// Get and Index never fail, they return nil on mismatch.
			if kind != KindObject {
				assert.Nil(t, v.Get("k"))
			}
			if kind != KindArray {
				assert.Nil(t, v.Index(0))
			}
		})
	}
}

func TestValue_NilReceiver(t *testing.T) {
	var v *Value
	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
	assert.Nil(t, v.Get("k"))
	assert.Nil(t, v.Index(0))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, "null", v.String())
}

func TestValue_AccessorPayloads(t *testing.T) {
	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	n, ok := Number(42.5).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 42.5, n)

	s, ok := Str("hello").AsStr()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	arr, ok := Array(Null(), Bool(false)).AsArray()
	require.True(t, ok)
	assert.Len(t, arr, 2)

	obj, ok := Object(map[string]*Value{"k": Str("v")}).AsObject()
	require.True(t, ok)
	assert.Len(t, obj, 1)
}

func TestValue_GetAndIndex(t *testing.T) {
	v := Object(map[string]*Value{"a": Number(1)})
	requireEqualValue(t, Number(1), v.Get("a"))
	assert.Nil(t, v.Get("missing"))

	arr := Array(Str("a"), Str("b"), Str("c"))
	requireEqualValue(t, Str("b"), arr.Index(1))
	assert.Nil(t, arr.Index(5))
	assert.Nil(t, arr.Index(-1))
}

func TestValue_Len(t *testing.T) {
	assert.Equal(t, 3, Array(Null(), Null(), Null()).Len())
	assert.Equal(t, 1, Object(map[string]*Value{"k": Null()}).Len())
	assert.Equal(t, 0, Array().Len())
	assert.Equal(t, 0, Str("hello").Len())
	assert.Equal(t, 0, Number(5).Len())
}

// ============================================================
// Equality
// ============================================================

func TestValue_Equal(t *testing.T) {
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Bool(true).Equal(Bool(true)))
	assert.True(t, Number(42).Equal(Number(42)))
	assert.True(t, Str("x").Equal(Str("x")))
	assert.True(t, Array(Number(1), Number(2)).Equal(Array(Number(1), Number(2))))
	assert.True(t, Object(map[string]*Value{"a": Number(1)}).Equal(
		Object(map[string]*Value{"a": Number(1)})))

	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Str("x").Equal(Str("y")))
	assert.False(t, Array(Number(1)).Equal(Array(Number(1), Number(1))))
	assert.False(t, Array(Number(1), Number(2)).Equal(Array(Number(2), Number(1))))
}

func TestValue_EqualVariantExact(t *testing.T) {
	// Equality is variant-exact: no cross-kind coercion.
	assert.False(t, Number(1).Equal(Bool(true)))
	assert.False(t, Null().Equal(Bool(false)))
	assert.False(t, Number(0).Equal(Null()))
	assert.False(t, Str("1").Equal(Number(1)))
	assert.False(t, Object(nil).Equal(Array()))
	assert.False(t, Array().Equal(Object(nil)))
}

func TestValue_EqualObjectKeyOrder(t *testing.T) {
	a := mustParse(t, `{"x": 1, "y": [true, null]}`)
	b := mustParse(t, `{"y": [true, null], "x": 1}`)
	assert.True(t, a.Equal(b))

	c := mustParse(t, `{"x": 1, "y": [null, true]}`)
	assert.False(t, a.Equal(c), "array order is significant")
}

// ============================================================
// Kind
// ============================================================

func TestKind_String(t *testing.T) {
	names := map[Kind]string{
		KindNull:   "null",
		KindBool:   "bool",
		KindNumber: "number",
		KindString: "string",
		KindArray:  "array",
		KindObject: "object",
	}
	for kind, name := range names {
		assert.Equal(t, name, kind.String())
	}
}
