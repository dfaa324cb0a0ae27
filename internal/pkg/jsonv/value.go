// Package jsonv provides an ordered JSON value tree.
//
// Rule data arrives with no fixed schema, so payloads are decoded into a
// closed set of variants (Null, Bool, Number, String, Array, *Object) rather
// than into typed structs. Object members keep their source order, which
// matters for grids and badges that display attributes as written.
package jsonv

import (
	"math"
	"strconv"
)

// Value is one node of a JSON document. The set of implementations is closed.
type Value interface {
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number.
type Number float64

// String is a JSON string.
type String string

// Array is a JSON array.
type Array []Value

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (*Object) isValue() {}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers insertion order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value Value) *Object {
	if value == nil {
		value = Null{}
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return o
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present, whatever its value.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Lookup returns the value under key unless it is absent or null.
// It is the equivalent of a nullish check on a loosely typed record.
func (o *Object) Lookup(key string) (Value, bool) {
	v, ok := o.Get(key)
	if !ok || IsNull(v) {
		return nil, false
	}
	return v, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Members returns the members in insertion order. The slice must not be modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, m := range o.Members() {
		keys = append(keys, m.Key)
	}
	return keys
}

// IsNull reports whether v is nil or the null literal.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// AsObject returns v as an object if it is one.
func AsObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

// AsString returns v as a Go string if it is a JSON string.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsNumber returns v as a float64 if it is a JSON number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// Truthy applies loose truthiness: false, 0, NaN, "" and null are falsy,
// everything else (including empty arrays and objects) is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil, Null:
		return false
	case Bool:
		return bool(t)
	case Number:
		return t != 0 && !math.IsNaN(float64(t))
	case String:
		return t != ""
	case Array, *Object:
		return true
	default:
		return false
	}
}

// Display returns the canonical string form of v. Scalars print as their
// literal text (numbers without trailing zeros); arrays and objects print as
// compact JSON.
func Display(v Value) string {
	switch t := v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(t))
	case Number:
		return FormatNumber(float64(t))
	case String:
		return string(t)
	case Array, *Object:
		b, err := Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

// FormatNumber prints f the way a browser would: integers without a decimal
// point, fractions with the shortest exact representation, exponents only
// for very large or very small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
