package fastjson

import (
	"math"
	"strconv"

	"github.com/rsyslog/libfastjson/numfmt"
)

// ToBool implements spec.md §4.8's boolean coercion row: self for Bool,
// "nonzero" for Int/Double, "nonempty" for String, false otherwise
// (including a nil Value).
func (v *Value) ToBool() bool {
	if v == nil {
		return false
	}
	switch v.kind {
	case Bool:
		return v.boolean
	case Int:
		return v.i64 != 0
	case Double:
		return v.f64 != 0.0
	case String:
		return v.strLen != 0
	default:
		return false
	}
}

// ToInt64 implements spec.md §4.8's int64 coercion row: 0/1 for Bool,
// self for Int, truncation toward zero for Double, parse_int64 (or 0 on
// parse failure) for String, 0 otherwise.
func (v *Value) ToInt64() int64 {
	if v == nil {
		return 0
	}
	switch v.kind {
	case Bool:
		if v.boolean {
			return 1
		}
		return 0
	case Int:
		return v.i64
	case Double:
		return int64(v.f64)
	case String:
		i, ok := numfmt.ParseInt64(string(v.stringBytes()))
		if !ok {
			return 0
		}
		return i
	default:
		return 0
	}
}

// ToInt32 is ToInt64 saturated to [math.MinInt32, math.MaxInt32].
func (v *Value) ToInt32() int32 {
	i := v.ToInt64()
	switch {
	case i < math.MinInt32:
		return math.MinInt32
	case i > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(i)
	}
}

// ToFloat64 implements spec.md §4.8's double coercion row: 0/1 for
// Bool, widening for Int, self for Double, a strtod-style
// full-consumption parse for String (0.0 on failure or partial
// consumption, with out-of-range magnitudes clamped to 0.0 the way
// ERANGE is handled in the original), 0.0 otherwise.
func (v *Value) ToFloat64() float64 {
	if v == nil {
		return 0
	}
	switch v.kind {
	case Bool:
		if v.boolean {
			return 1
		}
		return 0
	case Int:
		return float64(v.i64)
	case Double:
		return v.f64
	case String:
		f, err := strconv.ParseFloat(string(v.stringBytes()), 64)
		if err != nil {
			return 0
		}
		if math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToString renders v via its "simple entry point" serialization
// (Value.String) for any non-string kind, per spec.md §4.8's string
// coercion row; for a String-kind Value it returns the raw (unescaped)
// string payload.
func (v *Value) ToString() string {
	if v == nil {
		return v.String()
	}
	if v.kind == String {
		return string(v.stringBytes())
	}
	return v.String()
}
