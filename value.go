package tinyjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	eng "github.com/reoring/tinyjson/internal/engine"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

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
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a decoded document node. It is a closed tagged variant: exactly
// one of the payload fields is meaningful, selected by kind. The zero Value
// is Null.
//
// Values produced by Parse form a strict tree; no node is shared between two
// parents.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a 64-bit float.
func Number(f float64) Value { return Value{kind: KindNumber, n: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array builds an array from the given elements. A nil or empty argument list
// yields an empty (non-nil) array.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// Object builds an object from m. A nil map yields an empty object.
func Object(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindObject, obj: m}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the elements of an array. The slice is owned by the Value.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the members of an object. The map is owned by the Value.
func (v Value) AsObject() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// Len returns the number of elements or members for arrays and objects, the
// byte length for strings, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	case KindString:
		return len(v.s)
	}
	return 0
}

// Get looks up an object member.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	m, ok := v.obj[key]
	return m, ok
}

// Index returns the i-th array element.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Depth returns the container nesting depth: 0 for scalars, 1 for a flat
// array or object. It matches how ParseOpt.MaxDepth counts.
func (v Value) Depth() int {
	d := 0
	switch v.kind {
	case KindArray:
		for _, e := range v.arr {
			d = max(d, e.Depth())
		}
	case KindObject:
		for _, e := range v.obj {
			d = max(d, e.Depth())
		}
	default:
		return 0
	}
	return d + 1
}

// Keys returns the object keys in sorted order. Object iteration order is
// otherwise unspecified.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports deep structural equality. Numbers compare with ==, so NaN
// never equals itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, a := range v.obj {
			b, ok := o.obj[k]
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface projects the tree onto plain Go values: nil, bool, float64,
// string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	}
	return nil
}

// FromAny converts a plain Go tree into a Value. Besides the types produced by
// Interface it accepts signed/unsigned integers, float32, []Value, Value and
// number types exposing Float64 (json.Number and its look-alikes). Number
// literals are held to the same rules as Parse: json.Number text must match
// the JSON number grammar (CodeMalformedNumber) and every number must fit a
// finite float64 (CodeInvalidNumber).
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case json.Number:
		if !eng.ValidNumber(string(t)) {
			return Value{}, &LexError{Code: CodeMalformedNumber, Offset: -1, Text: string(t)}
		}
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return Value{}, &SyntaxError{Code: CodeInvalidNumber, Offset: -1, Found: fmt.Sprintf("number %q", string(t))}
		}
		return Number(f), nil
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, &SyntaxError{
				Code:   CodeInvalidNumber,
				Offset: -1,
				Found:  fmt.Sprintf("number %q", fmt.Sprint(x)),
			}
		}
		return Number(f), nil
	case []Value:
		return Array(t...), nil
	case []any:
		out := make([]Value, len(t))
		for i, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, underPointer(err, strconv.Itoa(i))
			}
			out[i] = ev
		}
		return Array(out...), nil
	case map[string]any:
		out := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, underPointer(err, k)
			}
			out[k] = ev
		}
		return Object(out), nil
	case map[string]Value:
		return Object(t), nil
	}
	return Value{}, fmt.Errorf("tinyjson: unsupported type %T", x)
}

// underPointer prefixes the path of a SyntaxError raised inside a container
// member. The path is built while unwinding so successful conversions never
// allocate one.
func underPointer(err error, seg string) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		se.Path = "/" + pointerEscaper.Replace(seg) + se.Path
	}
	return err
}
