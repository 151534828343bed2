package fastjson_test

import (
	"testing"

	"github.com/rsyslog/libfastjson"
	"github.com/stretchr/testify/require"
)

func TestObjectAddGetHas(t *testing.T) {
	obj, ok := fastjson.NewObject().Object()
	require.True(t, ok)

	obj.Add("a", fastjson.NewInt(1), 0)
	obj.Add("b", fastjson.NewInt(2), 0)

	require.True(t, obj.Has("a"))
	require.False(t, obj.Has("z"))
	require.EqualValues(t, 1, obj.Get("a").ToInt64())
	require.Nil(t, obj.Get("z"))
	require.Equal(t, 2, obj.Len())
}

func TestObjectAddReplacesAndKeepsOrder(t *testing.T) {
	obj, _ := fastjson.NewObject().Object()
	obj.Add("a", fastjson.NewInt(1), 0)
	obj.Add("b", fastjson.NewInt(2), 0)
	obj.Add("a", fastjson.NewInt(99), 0)

	require.Equal(t, 2, obj.Len())
	require.EqualValues(t, 99, obj.Get("a").ToInt64())

	var keys []string
	for it := obj.Iterate(); it.Valid(); it.Next() {
		keys = append(keys, it.PeekKey())
	}
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestObjectDelPreservesOrder(t *testing.T) {
	obj, _ := fastjson.NewObject().Object()
	obj.Add("a", fastjson.NewInt(1), 0)
	obj.Add("b", fastjson.NewInt(2), 0)
	obj.Add("c", fastjson.NewInt(3), 0)

	require.True(t, obj.Del("b"))
	require.False(t, obj.Del("b"))

	var keys []string
	for it := obj.Begin(); !it.Equal(obj.End()); it.Next() {
		keys = append(keys, it.PeekKey())
	}
	require.Equal(t, []string{"a", "c"}, keys)
}

func TestObjectKeyIsConstantSkipsDuplication(t *testing.T) {
	obj, _ := fastjson.NewObject().Object()
	key := "constant-key"
	obj.Add(key, fastjson.NewBool(true), fastjson.KeyIsConstant)

	require.True(t, obj.Has("constant-key"))
	require.True(t, obj.Get("constant-key").ToBool())
}

func TestObjectKeyIsNewSkipsLookup(t *testing.T) {
	obj, _ := fastjson.NewObject().Object()
	obj.Add("a", fastjson.NewInt(1), fastjson.KeyIsNew)
	obj.Add("a", fastjson.NewInt(2), fastjson.KeyIsNew)

	// KeyIsNew bypasses the replace-in-place lookup, so both entries land
	// in the table as distinct appends.
	require.Equal(t, 2, obj.Len())
}

func TestObjectOnNilValueIsEmpty(t *testing.T) {
	obj, ok := (*fastjson.Value)(nil).Object()
	require.False(t, ok)
	require.Equal(t, 0, obj.Len())
	require.Nil(t, obj.Get("a"))
	require.False(t, obj.Has("a"))
}

func TestObjectGetErrReturnsKeyError(t *testing.T) {
	obj, _ := fastjson.NewObject().Object()
	obj.Add("a", fastjson.NewInt(1), 0)

	v, err := obj.GetErr("a")
	require.NoError(t, err)
	require.EqualValues(t, 1, v.ToInt64())

	_, err = obj.GetErr("missing")
	require.Error(t, err)
	var keyErr *fastjson.KeyError
	require.ErrorAs(t, err, &keyErr)
	require.Equal(t, "missing", keyErr.Key)
}

func TestValueObjectErrReturnsTypeError(t *testing.T) {
	v := fastjson.NewInt(1)
	defer v.Release()

	_, err := v.ObjectErr()
	require.Error(t, err)
	var typeErr *fastjson.TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, "int", typeErr.Got.String())
	require.Equal(t, "object", typeErr.Want.String())
}

func TestObjectIteratorAtEndOnEmptyObject(t *testing.T) {
	obj, _ := fastjson.NewObject().Object()
	it := obj.Iterate()
	require.True(t, it.Equal(obj.End()))
	require.False(t, it.Valid())
}
