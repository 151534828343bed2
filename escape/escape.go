// Package escape implements the JSON string escape engine: a
// byte-classified lookup table driving a sliding-cursor flush, so the
// common case of a long run of pass-through bytes costs one table probe
// per byte and no function calls.
package escape

const hexDigits = "0123456789abcdef"

// classify marks each byte 0-255 as pass-through (0), a two-character
// escape (the escape character itself), or a control byte requiring the
// \u00XY form (escAsUnicode). Grounded on the classification table in
// json_object.c's needsEscape / strjson's bytemapToJSON.
const escAsUnicode = 1

var classify [256]byte

func init() {
	for c := 0; c < 0x20; c++ {
		classify[c] = escAsUnicode
	}
	classify['"'] = '"'
	classify['\\'] = '\\'
	classify['/'] = '/'
	classify['\b'] = 'b'
	classify['\n'] = 'n'
	classify['\r'] = 'r'
	classify['\t'] = 't'
	classify['\f'] = 'f'
}

// Escape appends the JSON-escaped form of s to dst, without surrounding
// quotes. It is byte-oriented: multi-byte UTF-8 sequences pass through
// unexamined, and embedded NUL bytes are escaped like any other control
// byte rather than truncating the walk — Go strings carry an explicit
// length, so there is no byte-terminator ambiguity to resolve here.
func Escape(dst []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		e := classify[c]
		if e == 0 {
			continue
		}
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		start = i + 1
		if e == escAsUnicode {
			dst = appendUnicodeEscape(dst, c)
		} else {
			dst = append(dst, '\\', e)
		}
	}
	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return dst
}

// EscapeBytes is Escape for a byte slice, for callers that already hold
// raw bytes (e.g. a Value's inline/heap string storage) and want to avoid
// a string conversion.
func EscapeBytes(dst []byte, s []byte) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		e := classify[c]
		if e == 0 {
			continue
		}
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		start = i + 1
		if e == escAsUnicode {
			dst = appendUnicodeEscape(dst, c)
		} else {
			dst = append(dst, '\\', e)
		}
	}
	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return dst
}

func appendUnicodeEscape(dst []byte, c byte) []byte {
	return append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
}

// NeedsEscape reports whether s contains any byte that Escape would
// rewrite. Useful for callers that want to skip buffering when a string
// is already JSON-safe.
func NeedsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if classify[s[i]] != 0 {
			return true
		}
	}
	return false
}
