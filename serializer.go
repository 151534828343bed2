package fastjson

import (
	"bytes"
	"io"

	"github.com/rsyslog/libfastjson/escape"
	"github.com/rsyslog/libfastjson/numfmt"
)

// Flags are the layout bits accepted by Value.Format/Append/EncodeTo,
// spec.md's C7 layout engine. They are bitwise combinable.
type Flags uint8

const (
	// Pretty inserts newlines after '{', '[' and ',', indenting nested
	// levels.
	Pretty Flags = 1 << iota
	// PrettyTab, combined with Pretty, indents with one tab per level
	// instead of two spaces.
	PrettyTab
	// Spaced inserts a space after ':', after '['/'{', and before
	// ']'/'}'.
	Spaced
	// NoTrailingZero trims a formatted double's trailing zeros after the
	// decimal point, down to a single digit (see numfmt.FormatFloat).
	NoTrailingZero
)

// Serializer produces the textual representation of v at the given
// indent level under flags, writing to w and returning the number of
// bytes written. Every non-null Value holds one (spec.md §4.6); install
// a custom Serializer with Value.SetSerializer.
type Serializer func(v *Value, w io.Writer, level int, flags Flags) (int, error)

var (
	nullLiteral  = []byte("null")
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
)

func defaultSerializer(kind Kind) Serializer {
	switch kind {
	case Bool:
		return serializeBool
	case Int:
		return serializeInt
	case Double:
		return serializeDouble
	case String:
		return serializeString
	case ObjectKind:
		return serializeObject
	case ArrayKind:
		return serializeArray
	default:
		return serializeNull
	}
}

// SetSerializer installs fn, userData, and userDelete as v's serializer,
// per spec.md §4.6's set_serializer: any prior user_delete is invoked
// with the prior user_data first, regardless of whether fn is nil. A nil
// fn restores the default serializer for v's kind and clears
// userData/userDelete. SetSerializer on a nil Value is a no-op.
func (v *Value) SetSerializer(fn Serializer, userData interface{}, userDelete UserDeleteFunc) {
	if v == nil {
		return
	}
	v.runUserDelete()
	if fn == nil {
		v.serializer = defaultSerializer(v.kind)
		v.userData = nil
		v.userDelete = nil
		return
	}
	v.serializer = fn
	v.userData = userData
	v.userDelete = userDelete
}

// serialize is the single recursion point for container children: it
// handles the nil-is-null case uniformly so that every contained Value —
// however it got there — is emitted through its own serializer pointer,
// per spec.md §4.6.
func serialize(v *Value, w io.Writer, level int, flags Flags) (int, error) {
	if v == nil {
		return w.Write(nullLiteral)
	}
	return v.serializer(v, w, level, flags)
}

func serializeNull(_ *Value, w io.Writer, _ int, _ Flags) (int, error) {
	return w.Write(nullLiteral)
}

func serializeBool(v *Value, w io.Writer, _ int, _ Flags) (int, error) {
	if v.boolean {
		return w.Write(trueLiteral)
	}
	return w.Write(falseLiteral)
}

func serializeInt(v *Value, w io.Writer, _ int, _ Flags) (int, error) {
	return w.Write(numfmt.AppendInt64(nil, v.i64))
}

func serializeDouble(v *Value, w io.Writer, _ int, flags Flags) (int, error) {
	if text, ok := v.userData.(string); ok {
		// double_from_string (spec.md §4.8): the preserved textual form
		// is emitted verbatim, bypassing numfmt entirely.
		return w.Write(s2b(text))
	}
	return w.Write(numfmt.AppendFloat(nil, v.f64, flags&NoTrailingZero != 0))
}

func serializeString(v *Value, w io.Writer, _ int, _ Flags) (int, error) {
	e := &errWriter{w: w}
	e.writeByte('"')
	e.write(escape.EscapeBytes(nil, v.stringBytes()))
	e.writeByte('"')
	return e.n, e.err
}

// errWriter accumulates a byte count and the first write error across a
// sequence of writes to the same underlying io.Writer, letting container
// serializers read like the sequence of emission steps spec.md §4.7
// describes without hand-checking every intermediate error.
type errWriter struct {
	w   io.Writer
	n   int
	err error
}

func (e *errWriter) write(p []byte) {
	if e.err != nil || len(p) == 0 {
		return
	}
	nn, err := e.w.Write(p)
	e.n += nn
	e.err = err
}

func (e *errWriter) writeByte(b byte) {
	e.write([]byte{b})
}

func (e *errWriter) writeString(s string) {
	e.write(s2b(s))
}

func (e *errWriter) serialize(v *Value, level int, flags Flags) {
	if e.err != nil {
		return
	}
	nn, err := serialize(v, e.w, level, flags)
	e.n += nn
	e.err = err
}

func (e *errWriter) indent(level int, flags Flags) {
	if e.err != nil || flags&Pretty == 0 {
		return
	}
	unit := "  "
	if flags&PrettyTab != 0 {
		unit = "\t"
	}
	for i := 0; i < level; i++ {
		e.writeString(unit)
	}
}

// serializeObject implements spec.md §4.7's object container framing:
// "{"; newline if PRETTY; for each entry, a comma (and newline if
// PRETTY) when not first, a leading space when SPACED, indentation to
// level+1, the quoted key, ":" or ": ", and the value recursed at
// level+1; after the last entry, a newline and indent back to level when
// PRETTY and at least one entry existed; then the closing brace, with a
// leading space when SPACED.
func serializeObject(v *Value, w io.Writer, level int, flags Flags) (int, error) {
	e := &errWriter{w: w}
	pretty := flags&Pretty != 0
	spaced := flags&Spaced != 0

	e.writeByte('{')
	if pretty {
		e.writeByte('\n')
	}
	for i := range v.entries {
		if i > 0 {
			e.writeByte(',')
			if pretty {
				e.writeByte('\n')
			}
		}
		if spaced {
			e.writeByte(' ')
		}
		e.indent(level+1, flags)
		e.writeByte('"')
		e.write(escape.Escape(nil, v.entries[i].key))
		e.writeByte('"')
		if spaced {
			e.writeString(": ")
		} else {
			e.writeByte(':')
		}
		e.serialize(v.entries[i].value, level+1, flags)
	}
	if pretty && len(v.entries) > 0 {
		e.writeByte('\n')
		e.indent(level, flags)
	}
	if spaced {
		e.writeString(" }")
	} else {
		e.writeByte('}')
	}
	return e.n, e.err
}

// serializeArray mirrors serializeObject without keys, per spec.md
// §4.7's "Array: analogous".
func serializeArray(v *Value, w io.Writer, level int, flags Flags) (int, error) {
	e := &errWriter{w: w}
	pretty := flags&Pretty != 0
	spaced := flags&Spaced != 0

	e.writeByte('[')
	if pretty {
		e.writeByte('\n')
	}
	for i, el := range v.elems {
		if i > 0 {
			e.writeByte(',')
			if pretty {
				e.writeByte('\n')
			}
		}
		if spaced {
			e.writeByte(' ')
		}
		e.indent(level+1, flags)
		e.serialize(el, level+1, flags)
	}
	if pretty && len(v.elems) > 0 {
		e.writeByte('\n')
		e.indent(level, flags)
	}
	if spaced {
		e.writeString(" ]")
	} else {
		e.writeByte(']')
	}
	return e.n, e.err
}

// EncodeTo writes v's JSON text to w under flags (the callback-form
// sink of spec.md §6), returning the number of bytes written. A write
// error aborts without retry; the partial count is still returned.
func (v *Value) EncodeTo(w io.Writer, flags Flags) (int, error) {
	return serialize(v, w, 0, flags)
}

// Append serializes v under flags and appends the result to dst,
// returning the extended slice. This is the allocation-amortizing path
// for repeated serialization into a caller-managed buffer.
func (v *Value) Append(dst []byte, flags Flags) []byte {
	buf := bytes.NewBuffer(dst)
	serialize(v, buf, 0, flags)
	return buf.Bytes()
}

// Format serializes v under flags using v's cached format buffer (the
// format_buffer of spec.md §3, reused and reset across calls on the
// same root rather than reallocated, so repeated calls avoid
// reallocating the scratch storage even though each returns its own
// independent string).
func (v *Value) Format(flags Flags) string {
	if v == nil {
		return "null"
	}
	if v.formatBuf == nil {
		v.formatBuf = new(bytes.Buffer)
	}
	v.formatBuf.Reset()
	serialize(v, v.formatBuf, 0, flags)
	return v.formatBuf.String()
}

// String renders v using the default "simple entry point" flag set,
// SPACED, per spec.md §4.7.
func (v *Value) String() string {
	return v.Format(Spaced)
}
