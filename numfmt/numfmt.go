// Package numfmt implements libfastjson's numeric formatting rules:
// shortest unambiguous decimal for int64, and a round-trip-safe,
// locale-independent rendering for float64 that matches json_object.c's
// %.17g-based double formatter (NaN/Infinity tokens, a ".0" suffix on
// integer-valued doubles printed without an exponent, and optional
// trailing-zero trimming).
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// FormatInt64 renders i as a decimal string, the shortest unambiguous
// signed 64-bit form.
func FormatInt64(i int64) string {
	return strconv.FormatInt(i, 10)
}

// AppendInt64 is the append-style form of FormatInt64.
func AppendInt64(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, i, 10)
}

// ParseInt64 parses s as a base-10 signed 64-bit integer, requiring the
// whole string to be consumed (the Go equivalent of the collaborator
// contract's parse_int64(cstring) -> (int64, ok)).
func ParseInt64(s string) (int64, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	return i, err == nil
}

// FormatFloat renders f following json_object.c's
// fjson_object_double_to_json_string: NaN/Infinity tokens for non-finite
// values, otherwise a %.17g-equivalent, round-trip-safe decimal with a
// guaranteed ".0" suffix when the shortest form would otherwise look
// like an integer. When noTrailingZero is true, a trailing run of zeros
// after the decimal point is trimmed to a single zero (1.250000 stays
// 1.25; 1.0 stays 1.0).
func FormatFloat(f float64, noTrailingZero bool) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	// strconv.FormatFloat is always locale-independent, unlike C's
	// snprintf("%.17g", ...); there is no comma-for-decimal-point
	// substitution to make here.
	s := strconv.FormatFloat(f, 'g', 17, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	if noTrailingZero {
		s = trimTrailingZeros(s)
	}
	return s
}

// AppendFloat is the append-style form of FormatFloat.
func AppendFloat(dst []byte, f float64, noTrailingZero bool) []byte {
	return append(dst, FormatFloat(f, noTrailingZero)...)
}

// trimTrailingZeros keeps exactly one zero after the decimal point,
// dropping the rest: 1.250000 -> 1.25, 1.0 -> 1.0, 100.00 -> 100.0.
// Values using exponent notation are left untouched.
func trimTrailingZeros(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 || strings.ContainsAny(s, "eE") {
		return s
	}
	last := dot + 1 // keep at least one digit after the dot
	for i := dot + 1; i < len(s); i++ {
		if s[i] != '0' {
			last = i
		}
	}
	return s[:last+1]
}
