package fastjson

import "fmt"

// TypeError signals an operation called on a Value of the wrong Kind
// where no documented coercion default applies.
type TypeError struct {
	Got  Kind
	Want Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("fastjson: value is %s, expecting %s", e.Got, e.Want)
}

// KeyError signals a missing key in an Object lookup.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("fastjson: key %q not found in object", e.Key)
}

// IndexError signals an out of bounds Array access.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("fastjson: index %d out of bounds [0,%d)", e.Index, e.Len)
}
