// Package value provides the dynamic value type walked by the format engine.
//
// A Value is exactly one of six kinds: null, bool, number, string, array or
// object. Values are built from Go data with the From* constructors (or
// FromAny, which uses reflection) and are rendered to text with String.
//
// # Example Usage
//
//	user := value.Object(
//	    "name", "Alice",
//	    "tags", value.Array("admin", "ops"),
//	)
//
//	name, ok := value.Resolve(user, "name")      // "Alice", true
//	tag, ok := value.Resolve(user, "tags[-1]")   // "ops", true
//	_, ok = value.Resolve(user, "missing")       // absent: ok == false
//
//	fmt.Println(user.String())                   // [object Object]
//	fmt.Println(value.Array(1, 2, 3).String())   // 1,2,3
package value

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ValueKind describes the type of a Value.
type ValueKind int

const (
	// KindNull is the null value. The zero Value is null.
	KindNull ValueKind = iota

	// KindBool represents true or false.
	KindBool

	// KindNumber represents an IEEE-754 double.
	KindNumber

	// KindString represents UTF-8 text.
	KindString

	// KindArray represents an ordered sequence of values.
	//
	// Arrays are indexable by integers in [-len, len-1]; negative indices
	// count from the end.
	KindArray

	// KindObject represents a mapping from string keys to values.
	//
	// Key lookup is exact-match and case-sensitive.
	KindObject
)

func (k ValueKind) String() string {
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

// ObjectSentinel is what an object renders as.
const ObjectSentinel = "[object Object]"

// Value represents a dynamically typed value.
//
// Values are immutable for scalars, but arrays and objects reference the
// slice or map they were built from. The engine never mutates a Value it is
// given.
type Value struct {
	data any
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// FromBool creates a Value from a boolean.
func FromBool(v bool) Value {
	return Value{data: v}
}

// FromInt creates a number Value from an integer.
func FromInt(v int64) Value {
	return Value{data: float64(v)}
}

// FromFloat creates a number Value from a float64.
func FromFloat(v float64) Value {
	return Value{data: v}
}

// FromString creates a Value from a string.
func FromString(v string) Value {
	return Value{data: v}
}

// FromSlice creates an array Value. A nil slice yields an empty array.
func FromSlice(v []Value) Value {
	if v == nil {
		v = []Value{}
	}
	return Value{data: v}
}

// FromMap creates an object Value. A nil map yields an empty object.
func FromMap(v map[string]Value) Value {
	if v == nil {
		v = map[string]Value{}
	}
	return Value{data: v}
}

// Array builds an array Value, converting each item with FromAny.
//
//	value.Array("A", "B", 3)
func Array(items ...any) Value {
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = FromAny(item)
	}
	return FromSlice(out)
}

// Object builds an object Value from alternating keys and values. Values
// are converted with FromAny. It panics if a key is not a string or the
// argument count is odd, as a malformed literal is a programming error.
//
//	value.Object("name", "Alice", "age", 25)
func Object(pairs ...any) Value {
	if len(pairs)%2 != 0 {
		panic("value.Object: odd number of arguments")
	}
	m := make(map[string]Value, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("value.Object: key %v is %T, not string", pairs[i], pairs[i]))
		}
		m[key] = FromAny(pairs[i+1])
	}
	return FromMap(m)
}

// isoLayout matches the JavaScript Date.prototype.toISOString form.
const isoLayout = "2006-01-02T15:04:05.000Z"

// FromAny creates a Value from any Go value using reflection.
//
// FromAny converts Go types to their corresponding kinds:
//   - nil, nil pointers and nil interfaces -> Null
//   - bool -> Bool
//   - integer and float types -> Number
//   - string -> String
//   - []byte -> String
//   - time.Time -> String in ISO-8601 UTC form (2023-12-25T10:30:00.000Z)
//   - slices and arrays -> Array (recursively)
//   - maps -> Object (recursively, keys rendered with fmt)
//   - structs -> Object (exported fields, honoring json tags)
//   - pointers and interfaces -> dereferenced
//
// Anything else (funcs, channels, complex numbers) becomes its fmt.Stringer
// text when it has one and Null otherwise.
func FromAny(v any) Value {
	if v == nil {
		return Null()
	}
	switch d := v.(type) {
	case Value:
		return d
	case *Value:
		if d == nil {
			return Null()
		}
		return *d
	}
	return fromReflectValue(reflect.ValueOf(v))
}

var timeType = reflect.TypeOf(time.Time{})

func fromReflectValue(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Null()
	}
	if rv.Type() == timeType {
		t := rv.Interface().(time.Time)
		return FromString(t.UTC().Format(isoLayout))
	}
	if rv.CanInterface() {
		if val, ok := rv.Interface().(Value); ok {
			return val
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromFloat(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float())
	case reflect.String:
		return FromString(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return FromSlice(nil)
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return FromString(string(rv.Bytes()))
		}
		return fromSequence(rv)
	case reflect.Array:
		return fromSequence(rv)
	case reflect.Map:
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key()
			var key string
			if k.Kind() == reflect.String {
				key = k.String()
			} else {
				key = fmt.Sprintf("%v", k.Interface())
			}
			m[key] = fromReflectValue(iter.Value())
		}
		return FromMap(m)
	case reflect.Struct:
		return fromStruct(rv)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return fromReflectValue(rv.Elem())
	default:
		if rv.CanInterface() {
			if s, ok := rv.Interface().(fmt.Stringer); ok {
				return FromString(s.String())
			}
		}
		return Null()
	}
}

func fromSequence(rv reflect.Value) Value {
	slice := make([]Value, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		slice[i] = fromReflectValue(rv.Index(i))
	}
	return FromSlice(slice)
}

func fromStruct(rv reflect.Value) Value {
	t := rv.Type()
	m := make(map[string]Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}
		m[name] = fromReflectValue(rv.Field(i))
	}
	return FromMap(m)
}

// Kind returns the kind of value.
func (v Value) Kind() ValueKind {
	switch v.data.(type) {
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case string:
		return KindString
	case []Value:
		return KindArray
	case map[string]Value:
		return KindObject
	default:
		return KindNull
	}
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// AsBool returns the boolean value if it is one.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

// AsNumber returns the number value if it is one.
func (v Value) AsNumber() (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok
}

// AsString returns the string value if it is one.
func (v Value) AsString() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// AsSlice returns the elements if the value is an array.
func (v Value) AsSlice() ([]Value, bool) {
	s, ok := v.data.([]Value)
	return s, ok
}

// AsMap returns the entries if the value is an object.
func (v Value) AsMap() (map[string]Value, bool) {
	m, ok := v.data.(map[string]Value)
	return m, ok
}

// Len returns the element count of an array or the key count of an object.
func (v Value) Len() (int, bool) {
	switch d := v.data.(type) {
	case []Value:
		return len(d), true
	case map[string]Value:
		return len(d), true
	default:
		return 0, false
	}
}

// Keys returns the sorted keys of an object, or nil for other kinds.
func (v Value) Keys() []string {
	m, ok := v.data.(map[string]Value)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAttr looks up a key on an object. Any other kind, or a missing key,
// reports absent.
func (v Value) GetAttr(name string) (Value, bool) {
	obj, isObj := v.data.(map[string]Value)
	if !isObj {
		return Value{}, false
	}
	val, ok := obj[name]
	return val, ok
}

// GetIndex returns the array element at idx. Negative indices count from
// the end. Out-of-range indices and non-array values report absent.
func (v Value) GetIndex(idx int) (Value, bool) {
	arr, ok := v.data.([]Value)
	if !ok {
		return Value{}, false
	}
	if idx < 0 {
		idx += len(arr)
	}
	if idx < 0 || idx >= len(arr) {
		return Value{}, false
	}
	return arr[idx], true
}

// String renders the value as text:
//   - null renders as "null"
//   - booleans render as "true" or "false"
//   - integral numbers below 1e15 render without a fraction or exponent
//   - arrays render their elements joined by "," (null elements are empty)
//   - objects render as "[object Object]"
func (v Value) String() string {
	switch d := v.data.(type) {
	case bool:
		if d {
			return "true"
		}
		return "false"
	case float64:
		return FormatNumber(d)
	case string:
		return d
	case []Value:
		parts := make([]string, len(d))
		for i, item := range d {
			if item.IsNull() {
				continue
			}
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	case map[string]Value:
		return ObjectSentinel
	default:
		return "null"
	}
}

// FormatNumber renders a float the way the engine prints numbers.
//
// Integral values with magnitude below 1e15 print as plain integers. Other
// finite values use the shortest representation that round-trips, in fixed
// notation for magnitudes in [1e-7, 1e21) and exponent notation otherwise
// (1e+21, 1.5e-8). NaN and infinities print as NaN, Infinity and -Infinity.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	abs := math.Abs(f)
	if abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	// Go pads the exponent to two digits.
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// Native converts the value to plain Go data: nil, bool, float64, string,
// []any or map[string]any.
func (v Value) Native() any {
	switch d := v.data.(type) {
	case []Value:
		out := make([]any, len(d))
		for i, item := range d {
			out[i] = item.Native()
		}
		return out
	case map[string]Value:
		out := make(map[string]any, len(d))
		for k, item := range d {
			out[k] = item.Native()
		}
		return out
	default:
		return d
	}
}

// GoString returns a debug representation used by %#v.
func (v Value) GoString() string {
	switch d := v.data.(type) {
	case string:
		return strconv.Quote(d)
	case []Value:
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = item.GoString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]Value:
		keys := v.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%q: %s", k, d[k].GoString())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.String()
	}
}
