package fastjson

import (
	"reflect"
	"unsafe"
)

// b2s reinterprets a byte slice as a string without copying.
// The caller must not mutate b for as long as the returned string is alive.
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

// s2b reinterprets a string as a byte slice without copying.
// The returned slice must not be mutated.
func s2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	h := (*reflect.StringHeader)(unsafe.Pointer(&s))
	b := reflect.SliceHeader{
		Data: h.Data,
		Len:  h.Len,
		Cap:  h.Len,
	}
	return *(*[]byte)(unsafe.Pointer(&b))
}
