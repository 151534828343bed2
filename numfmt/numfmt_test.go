package numfmt_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/rsyslog/libfastjson/numfmt"
	"github.com/stretchr/testify/require"
)

func TestFormatInt64(t *testing.T) {
	require.Equal(t, "0", numfmt.FormatInt64(0))
	require.Equal(t, "-1", numfmt.FormatInt64(-1))
	require.Equal(t, "9223372036854775807", numfmt.FormatInt64(math.MaxInt64))
	require.Equal(t, "-9223372036854775808", numfmt.FormatInt64(math.MinInt64))
}

func TestParseInt64(t *testing.T) {
	i, ok := numfmt.ParseInt64("42")
	require.True(t, ok)
	require.EqualValues(t, 42, i)

	_, ok = numfmt.ParseInt64("42abc")
	require.False(t, ok)

	_, ok = numfmt.ParseInt64("")
	require.False(t, ok)
}

func TestFormatFloat_NonFinite(t *testing.T) {
	require.Equal(t, "NaN", numfmt.FormatFloat(math.NaN(), false))
	require.Equal(t, "Infinity", numfmt.FormatFloat(math.Inf(1), false))
	require.Equal(t, "-Infinity", numfmt.FormatFloat(math.Inf(-1), false))
}

func TestFormatFloat_IntegerValued(t *testing.T) {
	require.Equal(t, "1.0", numfmt.FormatFloat(1.0, false))
	require.Equal(t, "-2.0", numfmt.FormatFloat(-2.0, false))
	require.Equal(t, "0.0", numfmt.FormatFloat(0.0, false))
}

func TestFormatFloat_NoTrailingZero(t *testing.T) {
	require.Equal(t, "1.25", numfmt.FormatFloat(1.25, true))
	require.Equal(t, "1.0", numfmt.FormatFloat(1.0, true))
	require.Equal(t, "100.0", numfmt.FormatFloat(100.0, true))
}

func TestFormatFloat_RoundTrip(t *testing.T) {
	for _, f := range []float64{0.1, 3.14159, -123456.789, 1e300, 1e-300} {
		s := numfmt.FormatFloat(f, false)
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
}
