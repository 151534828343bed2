package fastjson

// objectEntry is one key/value pair of an Object Value. keyOwned records
// whether key was duplicated on insertion (library-owned, freed with the
// entry) or is a caller-constant string retained as-is — the distinction
// spec.md's C8 calls the KEY_IS_CONSTANT flag. Go's garbage collector
// frees strings regardless, but the flag still governs whether the key
// object may safely be assumed immutable/interned by the caller.
type objectEntry struct {
	key      string
	keyOwned bool
	value    *Value
}

// AddOption controls Object.Add's key-handling and lookup behavior,
// mirroring fjson_object_object_add_ex's opts bitmask.
type AddOption uint8

const (
	// KeyIsConstant marks key as a caller-owned constant: it is stored
	// as given, without duplication, on insertion.
	KeyIsConstant AddOption = 1 << iota
	// KeyIsNew asserts the key is not already present, skipping the
	// lookup that would otherwise replace an existing entry.
	KeyIsNew
)

// Object returns a handle for treating v as an Object. ok is false if v
// is nil or not of Object kind.
func (v *Value) Object() (Object, bool) {
	if v != nil && v.kind == ObjectKind {
		return Object{v}, true
	}
	return Object{}, false
}

// ObjectErr is Object for callers that want the wrong-kind case reported
// as a *TypeError.
func (v *Value) ObjectErr() (Object, error) {
	if o, ok := v.Object(); ok {
		return o, nil
	}
	return Object{}, &TypeError{Got: v.Kind(), Want: ObjectKind}
}

// Object is a handle for Object-kind operations on a Value. The zero
// Object is invalid; obtain one via Value.Object or NewObject().
type Object struct {
	v *Value
}

// Value returns the underlying Value.
func (o Object) Value() *Value { return o.v }

// Len returns the number of entries in the object.
func (o Object) Len() int {
	if o.v == nil {
		return 0
	}
	return len(o.v.entries)
}

func (o Object) indexOf(key string) int {
	for i := range o.v.entries {
		if o.v.entries[i].key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key, or nil if the object has no
// such key (the documented null-return default of spec.md §7).
func (o Object) Get(key string) *Value {
	if o.v == nil {
		return nil
	}
	if i := o.indexOf(key); i >= 0 {
		return o.v.entries[i].value
	}
	return nil
}

// GetErr is Get for callers that want the miss reported as a *KeyError
// instead of relying on the documented null default.
func (o Object) GetErr(key string) (*Value, error) {
	if o.v == nil {
		return nil, &KeyError{Key: key}
	}
	if i := o.indexOf(key); i >= 0 {
		return o.v.entries[i].value, nil
	}
	return nil, &KeyError{Key: key}
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	return o.v != nil && o.indexOf(key) >= 0
}

// Add inserts or replaces the value under key, per spec.md §4.8's
// object_add semantics: on replace, the existing value is released and
// the original key instance is kept (iteration order of surviving keys
// never changes); on insert, key is duplicated unless opts has
// KeyIsConstant. Add takes ownership of val — it does not Acquire it, so
// the object holds the sole new reference the caller handed it. Passing
// KeyIsNew skips the existing-key lookup, for callers that already know
// the key is absent.
func (o Object) Add(key string, val *Value, opts AddOption) {
	if o.v == nil {
		return
	}
	if opts&KeyIsNew == 0 {
		if i := o.indexOf(key); i >= 0 {
			o.v.entries[i].value.Release()
			o.v.entries[i].value = val
			return
		}
	}
	owned := opts&KeyIsConstant == 0
	if owned {
		key = string(append([]byte(nil), key...))
	}
	o.v.entries = append(o.v.entries, objectEntry{key: key, keyOwned: owned, value: val})
}

// Set is Add with default options (key duplicated, existing key looked
// up and replaced in place).
func (o Object) Set(key string, val *Value) {
	o.Add(key, val, 0)
}

// Del removes key, releasing its value. It reports whether key was
// present. Deletion preserves the insertion order of the remaining keys
// (spec.md §3 invariant 3).
func (o Object) Del(key string) bool {
	if o.v == nil {
		return false
	}
	i := o.indexOf(key)
	if i < 0 {
		return false
	}
	o.v.entries[i].value.Release()
	copy(o.v.entries[i:], o.v.entries[i+1:])
	o.v.entries[len(o.v.entries)-1] = objectEntry{}
	o.v.entries = o.v.entries[:len(o.v.entries)-1]
	return true
}

// Iterate returns an iterator positioned at the object's first entry, in
// insertion order, per spec.md §4.3 (C3) — equivalent to o.Begin().
// Mutating the object while an iterator is live is undefined behavior —
// documented, not defended against.
func (o Object) Iterate() ObjectIterator {
	if o.v == nil {
		return ObjectIterator{}
	}
	return o.Begin()
}
