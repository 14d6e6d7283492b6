package value

import (
	"math"
	"strconv"
	"strings"
)

// Equal reports structural equality. Numbers compare with ==, so NaN is
// never equal to itself; arrays compare element-wise and objects key-wise.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch d := v.data.(type) {
	case bool:
		return d == other.data.(bool)
	case float64:
		return d == other.data.(float64)
	case string:
		return d == other.data.(string)
	case []Value:
		o := other.data.([]Value)
		if len(d) != len(o) {
			return false
		}
		for i := range d {
			if !d[i].Equal(o[i]) {
				return false
			}
		}
		return true
	case map[string]Value:
		o := other.data.(map[string]Value)
		if len(d) != len(o) {
			return false
		}
		for k, item := range d {
			oi, ok := o[k]
			if !ok || !item.Equal(oi) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// ParseNumber converts text to a number with JavaScript Number() rules:
// surrounding whitespace is ignored, the empty string is 0, "Infinity" is
// accepted, and anything unparseable is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "+inf") ||
		strings.HasPrefix(lower, "-inf") || strings.HasPrefix(lower, "nan") {
		return math.NaN()
	}
	if strings.HasPrefix(lower, "0x") {
		if n, err := strconv.ParseUint(s[2:], 16, 64); err == nil {
			return float64(n)
		}
		return math.NaN()
	}
	if strings.ContainsRune(s, '_') {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// ToNumber converts a value to a number: numbers as-is, booleans as 0/1,
// null as 0, strings with ParseNumber and everything else as NaN.
func (v Value) ToNumber() float64 {
	switch d := v.data.(type) {
	case float64:
		return d
	case bool:
		if d {
			return 1
		}
		return 0
	case string:
		return ParseNumber(d)
	case nil:
		return 0
	default:
		return math.NaN()
	}
}
