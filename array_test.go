package fastjson_test

import (
	"testing"

	"github.com/rsyslog/libfastjson"
	"github.com/stretchr/testify/require"
)

func TestArrayAppendGet(t *testing.T) {
	arr, ok := fastjson.NewArray().Array()
	require.True(t, ok)

	arr.Append(fastjson.NewInt(1))
	arr.Append(fastjson.NewInt(2))
	arr.Append(fastjson.NewInt(3))

	require.Equal(t, 3, arr.Len())
	require.EqualValues(t, 2, arr.Get(1).ToInt64())
	require.Nil(t, arr.Get(10))
}

func TestArrayPutIdxGrowsWithNullSentinels(t *testing.T) {
	arr, _ := fastjson.NewArray().Array()
	arr.PutIdx(3, fastjson.NewString("three"))

	require.Equal(t, 4, arr.Len())
	require.Nil(t, arr.Get(0))
	require.Nil(t, arr.Get(1))
	require.Nil(t, arr.Get(2))
	require.Equal(t, "three", arr.Get(3).ToString())
}

func TestArrayPutIdxReleasesPriorValue(t *testing.T) {
	arr, _ := fastjson.NewArray().Array()
	old := fastjson.NewInt(1)
	arr.PutIdx(0, old)
	require.EqualValues(t, 1, old.RefCount())

	old.Acquire()
	arr.PutIdx(0, fastjson.NewInt(2))
	require.EqualValues(t, 1, old.RefCount())
	old.Release()
}

func TestArrayDel(t *testing.T) {
	arr, _ := fastjson.NewArray().Array()
	arr.Append(fastjson.NewInt(1))
	arr.Append(fastjson.NewInt(2))
	arr.Append(fastjson.NewInt(3))

	require.True(t, arr.Del(1))
	require.False(t, arr.Del(10))
	require.Equal(t, 2, arr.Len())
	require.EqualValues(t, 1, arr.Get(0).ToInt64())
	require.EqualValues(t, 3, arr.Get(1).ToInt64())
}

func TestArraySortAndBSearch(t *testing.T) {
	arr, _ := fastjson.NewArray().Array()
	for _, n := range []int64{5, 1, 4, 2, 3} {
		arr.Append(fastjson.NewInt(n))
	}

	less := func(x, y *fastjson.Value) bool { return x.ToInt64() < y.ToInt64() }
	arr.Sort(less)

	var got []int64
	for i := 0; i < arr.Len(); i++ {
		got = append(got, arr.Get(i).ToInt64())
	}
	require.Equal(t, []int64{1, 2, 3, 4, 5}, got)

	needle := fastjson.NewInt(3)
	idx, found := arr.BSearch(needle, less)
	require.True(t, found)
	require.Equal(t, 2, idx)

	missing := fastjson.NewInt(42)
	_, found = arr.BSearch(missing, less)
	require.False(t, found)
}

func TestArrayGetErrReturnsIndexError(t *testing.T) {
	arr, _ := fastjson.NewArray().Array()
	arr.Append(fastjson.NewInt(1))

	v, err := arr.GetErr(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, v.ToInt64())

	_, err = arr.GetErr(5)
	require.Error(t, err)
	var idxErr *fastjson.IndexError
	require.ErrorAs(t, err, &idxErr)
	require.Equal(t, 5, idxErr.Index)
	require.Equal(t, 1, idxErr.Len)
}

func TestValueArrayErrReturnsTypeError(t *testing.T) {
	v := fastjson.NewBool(true)
	defer v.Release()

	_, err := v.ArrayErr()
	require.Error(t, err)
	var typeErr *fastjson.TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, "boolean", typeErr.Got.String())
	require.Equal(t, "array", typeErr.Want.String())
}

func TestArrayOnNilValueIsEmpty(t *testing.T) {
	arr, ok := (*fastjson.Value)(nil).Array()
	require.False(t, ok)
	require.Equal(t, 0, arr.Len())
	require.Nil(t, arr.Get(0))
}
