// Package fastjson implements the core JSON value model of libfastjson: a
// tagged, reference-counted Value, its small-string optimization, and the
// serialization engine that turns a Value tree into JSON text.
//
// Parsing JSON text into a Value tree is explicitly out of scope (see
// SPEC_FULL.md) — Values are always built with the typed constructors in
// this file (NewBool, NewInt, NewDouble, DoubleFromString, NewString,
// NewStringBytes, NewObject, NewArray); the coercions in coerce.go read
// them back as Go values.
package fastjson

import (
	"bytes"
	"sync/atomic"
)

// inlineStringCap is the small-string-optimization threshold: strings
// shorter than this are stored directly inside the Value header instead
// of in a separately-allocated heap buffer.
const inlineStringCap = 15

// Value is a tagged, reference-counted JSON node.
//
// The JSON value null has no Value representation: every operation that
// accepts a *Value also accepts nil and treats it as null. Do not read a
// *Value's fields, nor call anything but Acquire on it, once its refcount
// has dropped to zero via Release.
type Value struct {
	kind     Kind
	refcount int32

	boolean bool
	i64     int64
	f64     float64

	strLen    int
	strInline [inlineStringCap]byte
	strHeap   []byte

	entries []objectEntry
	elems   []*Value

	serializer Serializer
	userData   interface{}
	userDelete UserDeleteFunc

	formatBuf *bytes.Buffer
}

// UserDeleteFunc finalizes user data installed by SetSerializer. It runs
// exactly once: either when the serializer is reset/replaced, or on the
// Value's final Release, whichever happens first.
type UserDeleteFunc func(v *Value, userData interface{})

func newValue(kind Kind) *Value {
	v := &Value{kind: kind, refcount: 1}
	v.serializer = defaultSerializer(kind)
	return v
}

// Kind returns v's kind, or the null kind if v is nil.
func (v *Value) Kind() Kind {
	if v == nil {
		return invalidKind
	}
	return v.kind
}

// IsNull reports whether v represents JSON null, i.e. v == nil.
func (v *Value) IsNull() bool {
	return v == nil
}

// Acquire increments v's reference count and returns v, for chaining.
// Acquire on a nil Value is a no-op and returns nil.
func (v *Value) Acquire() *Value {
	if v == nil {
		return nil
	}
	atomic.AddInt32(&v.refcount, 1)
	return v
}

// RefCount returns v's current reference count, or 0 for a nil Value.
func (v *Value) RefCount() int32 {
	if v == nil {
		return 0
	}
	return atomic.LoadInt32(&v.refcount)
}

// Release decrements v's reference count. When the count reaches zero it
// runs the user finalizer (if any), then the kind-specific destructor
// (which recursively releases contained Values), then frees v's own
// storage. Release reports whether this call destroyed v.
// Release on a nil Value is a no-op and reports false.
func (v *Value) Release() bool {
	if v == nil {
		return false
	}
	if atomic.AddInt32(&v.refcount, -1) > 0 {
		return false
	}
	v.runUserDelete()
	switch v.kind {
	case ObjectKind:
		for i := range v.entries {
			v.entries[i].value.Release()
			v.entries[i] = objectEntry{}
		}
		v.entries = nil
	case ArrayKind:
		for i, el := range v.elems {
			el.Release()
			v.elems[i] = nil
		}
		v.elems = nil
	}
	v.strHeap = nil
	v.formatBuf = nil
	v.serializer = nil
	return true
}

func (v *Value) runUserDelete() {
	if v.userDelete == nil {
		return
	}
	fn, data := v.userDelete, v.userData
	v.userDelete = nil
	v.userData = nil
	fn(v, data)
}

// NewBool returns a new boolean Value with refcount 1.
func NewBool(b bool) *Value {
	v := newValue(Bool)
	v.boolean = b
	return v
}

// NewInt returns a new signed 64-bit integer Value with refcount 1.
func NewInt(i int64) *Value {
	v := newValue(Int)
	v.i64 = i
	return v
}

// NewDouble returns a new double Value with refcount 1.
func NewDouble(f float64) *Value {
	v := newValue(Double)
	v.f64 = f
	return v
}

// DoubleFromString returns a new double Value holding f, additionally
// preserving text as its original textual form via the user-data
// mechanism (spec.md §4.8), with a user_delete that releases the
// duplicated text. serializeDouble emits the preserved text verbatim in
// place of running f back through numfmt, giving round-trip fidelity
// for values like DoubleFromString(0.1, "0.1").
func DoubleFromString(f float64, text string) *Value {
	v := NewDouble(f)
	v.userData = string(append([]byte(nil), text...))
	v.userDelete = func(*Value, interface{}) {}
	return v
}

// NewString returns a new string Value holding a copy of s, with refcount
// 1. Embedded NUL bytes are preserved; s need not be valid UTF-8 (the
// escape engine is byte-oriented, see escape.Escape).
func NewString(s string) *Value {
	return NewStringBytes(s2b(s))
}

// NewStringBytes is like NewString but takes the string's bytes directly,
// for callers that already hold a []byte. The bytes are copied into the
// Value; s may be reused afterwards.
func NewStringBytes(s []byte) *Value {
	v := newValue(String)
	v.setStringBytes(s)
	return v
}

func (v *Value) setStringBytes(s []byte) {
	v.strLen = len(s)
	if v.strLen < inlineStringCap {
		copy(v.strInline[:], s)
		v.strHeap = nil
	} else {
		v.strHeap = append([]byte(nil), s...)
	}
}

// stringBytes returns a view of v's raw (unescaped) string bytes. v must
// be of String kind.
func (v *Value) stringBytes() []byte {
	if v.strLen < inlineStringCap {
		return v.strInline[:v.strLen]
	}
	return v.strHeap
}

// NewObject returns a new, empty Object Value with refcount 1.
func NewObject() *Value {
	return newValue(ObjectKind)
}

// NewArray returns a new, empty Array Value with refcount 1.
func NewArray() *Value {
	return newValue(ArrayKind)
}
