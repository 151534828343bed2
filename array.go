package fastjson

import "sort"

// Array returns a handle for treating v as an Array. ok is false if v is
// nil or not of Array kind.
func (v *Value) Array() (Array, bool) {
	if v != nil && v.kind == ArrayKind {
		return Array{v}, true
	}
	return Array{}, false
}

// ArrayErr is Array for callers that want the wrong-kind case reported
// as a *TypeError.
func (v *Value) ArrayErr() (Array, error) {
	if a, ok := v.Array(); ok {
		return a, nil
	}
	return Array{}, &TypeError{Got: v.Kind(), Want: ArrayKind}
}

// Array is a handle for Array-kind operations on a Value. The zero Array
// is invalid; obtain one via Value.Array or NewArray().
type Array struct {
	v *Value
}

// Value returns the underlying Value.
func (a Array) Value() *Value { return a.v }

// Len returns the number of elements, including any null-sentinel gaps
// left by PutIdx.
func (a Array) Len() int {
	if a.v == nil {
		return 0
	}
	return len(a.v.elems)
}

// Get returns the element at index i, or nil if i is out of range or the
// slot is an unfilled gap (per spec.md §4's null-sentinel rule, both
// cases read back as a nil *Value).
func (a Array) Get(i int) *Value {
	if a.v == nil || i < 0 || i >= len(a.v.elems) {
		return nil
	}
	return a.v.elems[i]
}

// GetErr is Get for callers that want an out-of-range index reported as
// an *IndexError instead of relying on the nil default.
func (a Array) GetErr(i int) (*Value, error) {
	n := a.Len()
	if i < 0 || i >= n {
		return nil, &IndexError{Index: i, Len: n}
	}
	return a.v.elems[i], nil
}

// PutIdx stores val at index i, growing the array and filling any
// intermediate gap with nil (null) sentinels if i is beyond the current
// length, per spec.md's array_put_idx(i, v). Any existing value at i is
// released. PutIdx takes ownership of val.
func (a Array) PutIdx(i int, val *Value) {
	if a.v == nil || i < 0 {
		return
	}
	if i >= len(a.v.elems) {
		grown := make([]*Value, i+1)
		copy(grown, a.v.elems)
		a.v.elems = grown
	}
	if old := a.v.elems[i]; old != nil {
		old.Release()
	}
	a.v.elems[i] = val
}

// Append adds val as the new last element. Append takes ownership of
// val.
func (a Array) Append(val *Value) {
	if a.v == nil {
		return
	}
	a.v.elems = append(a.v.elems, val)
}

// Del removes the element at index i, shifting subsequent elements down
// and releasing the removed value. It reports whether i was in range.
func (a Array) Del(i int) bool {
	if a.v == nil || i < 0 || i >= len(a.v.elems) {
		return false
	}
	if old := a.v.elems[i]; old != nil {
		old.Release()
	}
	copy(a.v.elems[i:], a.v.elems[i+1:])
	a.v.elems[len(a.v.elems)-1] = nil
	a.v.elems = a.v.elems[:len(a.v.elems)-1]
	return true
}

// Sort reorders elements in place using less as the ordering predicate,
// mirroring array.sort(cmp) from spec.md's collaborator contract (here
// expressed as a Go less-than rather than a three-way comparator).
func (a Array) Sort(less func(x, y *Value) bool) {
	if a.v == nil {
		return
	}
	sort.SliceStable(a.v.elems, func(i, j int) bool {
		return less(a.v.elems[i], a.v.elems[j])
	})
}

// BSearch performs binary search over an array already ordered by the
// same predicate used with Sort, returning the index of the first
// element for which less(elem, needle) is false, and whether the
// element at that index compares equal to needle (neither less(elem,
// needle) nor less(needle, elem)). Mirrors array.bsearch(needle, cmp).
func (a Array) BSearch(needle *Value, less func(x, y *Value) bool) (index int, found bool) {
	if a.v == nil {
		return 0, false
	}
	n := len(a.v.elems)
	i := sort.Search(n, func(i int) bool {
		return !less(a.v.elems[i], needle)
	})
	if i < n && !less(needle, a.v.elems[i]) {
		return i, true
	}
	return i, false
}
