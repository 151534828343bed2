package fastjson

// ObjectIterator is an opaque, stable handle over an Object's key/value
// pairs, decoupled from the entries slice's underlying representation —
// spec.md's C3, grounded directly on original_source's
// json_object_iterator.c ("a pointer to a table entry, with end as a
// nullable sentinel"). Here the opaque position is an index and "end" is
// index == len(entries); the zero ObjectIterator is already a valid,
// exhausted ("end") iterator.
type ObjectIterator struct {
	entries []objectEntry
	index   int
}

// Begin returns an iterator positioned at the first entry of o (or
// already at End, for an empty object).
func (o Object) Begin() ObjectIterator {
	it := ObjectIterator{entries: o.v.entries}
	if len(it.entries) == 0 {
		it.index = 0
	}
	return it
}

// End returns the past-the-last-pair sentinel iterator for o.
func (o Object) End() ObjectIterator {
	return ObjectIterator{entries: o.v.entries, index: len(o.v.entries)}
}

// Equal reports whether a and b refer to the same position.
func (a ObjectIterator) Equal(b ObjectIterator) bool {
	return a.index == b.index
}

// Next advances the iterator by one entry. Calling Next at End is
// undefined behavior, as in the original C API (JASSERT territory) —
// callers should check Equal against End (or Valid) before advancing, or
// use Advance below, which only steps from a valid position.
func (it *ObjectIterator) Next() {
	it.index++
}

// Valid reports whether the iterator is not at End.
func (it ObjectIterator) Valid() bool {
	return it.index >= 0 && it.index < len(it.entries)
}

// PeekKey returns the key at the iterator's current position.
func (it ObjectIterator) PeekKey() string {
	if !it.Valid() {
		return ""
	}
	return it.entries[it.index].key
}

// PeekValue returns the value at the iterator's current position.
func (it ObjectIterator) PeekValue() *Value {
	if !it.Valid() {
		return nil
	}
	return it.entries[it.index].value
}

// Advance combines Valid and Next into a single step: it reports whether
// the position it was at before the call was valid, and advances only in
// that case. Because the step happens before Advance returns, PeekKey and
// PeekValue called after a true Advance read the entry following the one
// that was checked.
func (it *ObjectIterator) Advance() bool {
	ok := it.Valid()
	if ok {
		it.index++
	}
	return ok
}
